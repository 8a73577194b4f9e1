package notification

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// SendCommissionAlert posts a commission lifecycle event to the webhook
// configured in COMMISSION_WEBHOOK_URL. Delivery is best-effort: failures are
// logged and never surfaced to the request that triggered the event.
func SendCommissionAlert(commissionID uint, status string, amount float64) {
	url := os.Getenv("COMMISSION_WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"event":        "commission.status_changed",
		"commissionId": commissionID,
		"status":       status,
		"amount":       amount,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("failed to send commission webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
