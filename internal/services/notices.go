package services

import "dealbook/internal/models"

// Write actions named in notices and audit entries.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Past-tense verbs; all three record kinds take the masculine form.
var verbs = map[string]string{ActionCreate: "создан", ActionUpdate: "обновлён", ActionDelete: "удалён"}

// AgreementNotice names an agreement by its code.
func AgreementNotice(action string, a *models.Agreement) string {
	return "Договор «" + a.AgreementCode + "» " + verbs[action] + "."
}

// PortfolioNotice names a portfolio by its label.
func PortfolioNotice(action string, p *models.Portfolio) string {
	return "Портфель «" + p.String() + "» " + verbs[action] + "."
}

// CreditorNotice names a creditor by its name.
func CreditorNotice(action string, c *models.Creditor) string {
	return "Кредитор «" + c.Name + "» " + verbs[action] + "."
}
