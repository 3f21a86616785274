package stripeclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	stripeapi "github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// EventCheckoutCompleted тип события успешной оплаты checkout-сессии
const EventCheckoutCompleted = "checkout.session.completed"

// Client клиент для работы со Stripe
// Держит два API-клиента: боевой и тестовый. Тестовые бронирования
// оплачиваются через тестовый ключ и не попадают в реальную кассу
type Client struct {
	live             *stripeapi.API
	test             *stripeapi.API
	webhookSecret    string
	webhookTolerance time.Duration
	successURL       string
	cancelURL        string
	log              Logger
}

// Config конфигурация Stripe клиента
type Config struct {
	SecretKey                string
	TestSecretKey            string
	WebhookSecret            string
	WebhookToleranceSeconds  int
	SuccessURL               string
	CancelURL                string
}

// NewClient создает новый экземпляр Stripe клиента
func NewClient(cfg Config, log Logger) *Client {
	live := &stripeapi.API{}
	live.Init(cfg.SecretKey, nil)

	test := &stripeapi.API{}
	test.Init(cfg.TestSecretKey, nil)

	tolerance := time.Duration(cfg.WebhookToleranceSeconds) * time.Second
	if tolerance <= 0 {
		tolerance = 300 * time.Second
	}

	return &Client{
		live:             live,
		test:             test,
		webhookSecret:    cfg.WebhookSecret,
		webhookTolerance: tolerance,
		successURL:       cfg.SuccessURL,
		cancelURL:        cfg.CancelURL,
		log:              log,
	}
}

// CreateCheckoutSession создает checkout-сессию для оплаты бронирования
// ID бронирования кладется в metadata и client_reference_id - по нему
// webhook-обработчик находит бронирование для подтверждения
func (c *Client) CreateCheckoutSession(params CheckoutParams) (*CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(c.successURL),
		CancelURL:         stripe.String(c.cancelURL),
		ClientReferenceID: stripe.String(params.BookingID),
		CustomerEmail:     stripe.String(params.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"booking_id": params.BookingID,
		},
	}
	// Повторная отправка той же заявки не создает вторую сессию
	sessionParams.IdempotencyKey = stripe.String("booking-checkout-" + params.BookingID)

	api := c.live
	if params.TestMode {
		api = c.test
	}

	sess, err := api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s: %v", ErrCreateSession, params.BookingID, err)
	}

	c.log.Info("stripe checkout session created: booking_id=%s, session_id=%s, test=%t",
		params.BookingID, sess.ID, params.TestMode)

	return &CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// ParseCompletedCheckout проверяет подпись webhook-события и извлекает
// данные завершенной оплаты. Для событий других типов возвращает nil
func (c *Client) ParseCompletedCheckout(payload []byte, signature string) (*CompletedCheckout, error) {
	event, err := webhook.ConstructEventWithTolerance(payload, signature, c.webhookSecret, c.webhookTolerance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if string(event.Type) != EventCheckoutCompleted {
		c.log.Info("stripe event skipped: id=%s, type=%s", event.ID, event.Type)
		return nil, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: event %s: %v", ErrDecodeEvent, event.ID, err)
	}

	bookingID := session.Metadata["booking_id"]
	if bookingID == "" {
		bookingID = session.ClientReferenceID
	}

	return &CompletedCheckout{
		SessionID: session.ID,
		BookingID: bookingID,
	}, nil
}
