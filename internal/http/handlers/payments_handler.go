package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/platform/payments"
	"github.com/stayvista/stayvista-api/pkg/events"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

type PaymentsHandler struct {
	Intents payments.IntentCreator
	Events  events.Publisher
}

func NewPaymentsHandler(intents payments.IntentCreator, publisher events.Publisher) *PaymentsHandler {
	return &PaymentsHandler{Intents: intents, Events: publisher}
}

// CreateIntent opens a payment intent for the quoted total and hands the
// client secret back so the frontend can confirm the charge.
func (h *PaymentsHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	if in.TotalPrice <= 0 {
		response.BadRequest(w, "totalPrice must be positive")
		return
	}

	// Stripe amounts are integral cents.
	intent, err := h.Intents.CreateIntent(r.Context(), int64(in.TotalPrice*100))
	if err != nil {
		logger.ErrorContext(r.Context(), "payment intent creation failed", "error", err)
		response.InternalError(w, "error creating payment intent")
		return
	}

	if h.Events != nil {
		if err := h.Events.Publish(r.Context(), events.PaymentIntentCreated, events.PaymentIntentCreatedEvent{
			IntentID: intent.ID,
			Amount:   intent.Amount,
			Currency: "usd",
		}); err != nil {
			logger.ErrorContext(r.Context(), "event publish failed", "error", err, "subject", events.PaymentIntentCreated)
		}
	}

	response.JSON(w, http.StatusOK, map[string]string{"clientSecret": intent.ClientSecret})
}
