package notifier

import (
	"encoding/json"
	"fmt"
)

type inlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

func markup(rows ...[]inlineButton) json.RawMessage {
	raw, _ := json.Marshal(inlineKeyboard{InlineKeyboard: rows})
	return raw
}

// PauseMenu is the keyboard attached to delivered pauses and reminders
func PauseMenu() json.RawMessage {
	return markup(
		[]inlineButton{{Text: "Пауза сейчас", CallbackData: "pause_now"}},
	)
}

// AdminOrderMenu is the confirm/reject keyboard for a digital order
func AdminOrderMenu(orderID uint64) json.RawMessage {
	return markup(
		[]inlineButton{
			{Text: "✓ Подтвердить", CallbackData: fmt.Sprintf("confirm_%d", orderID)},
			{Text: "✗ Отклонить", CallbackData: fmt.Sprintf("reject_%d", orderID)},
		},
	)
}

// AdminBoxOrderMenu is the confirm/reject keyboard for a box pre-order
func AdminBoxOrderMenu(orderID uint64) json.RawMessage {
	return markup(
		[]inlineButton{
			{Text: "✓ Подтвердить", CallbackData: fmt.Sprintf("box_confirm_%d", orderID)},
			{Text: "✗ Отклонить", CallbackData: fmt.Sprintf("box_reject_%d", orderID)},
		},
	)
}

// PaymentMenu is the pay/paid keyboard shown with the payment link
func PaymentMenu(paymentLink string) json.RawMessage {
	return markup(
		[]inlineButton{{Text: "Оплатить", URL: paymentLink}},
		[]inlineButton{{Text: "Я оплатил", CallbackData: "i_paid"}},
	)
}
