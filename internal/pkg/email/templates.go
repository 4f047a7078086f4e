package email

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

const tokenTemplate = `
<h2>Payment Confirmation</h2>
<p>Your confirmation token: <strong style="font-size: 24px;">{{.Token}}</strong></p>
<p>Amount: <strong>${{.Amount}}</strong></p>
<p>Description: {{.Description}}</p>
<p>This token expires at {{.ExpiresAt}}</p>
<p><em>Do not share this token with anyone</em></p>
`

var tokenTmpl = template.Must(template.New("payment_token").Parse(tokenTemplate))

func renderTokenEmail(token string, amount decimal.Decimal, description string, expiresAt time.Time) (string, error) {
	var buf bytes.Buffer
	err := tokenTmpl.Execute(&buf, map[string]string{
		"Token":       token,
		"Amount":      amount.StringFixed(2),
		"Description": description,
		"ExpiresAt":   expiresAt.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
