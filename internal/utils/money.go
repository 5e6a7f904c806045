package utils

import "fmt"

// FormatMoney keeps consistent decimal formatting for fare fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatINR renders a fare with the currency prefix used on tickets.
func FormatINR(amount float64) string {
	return "INR " + FormatMoney(amount)
}
