package handlers

import (
	"net/url"
	"strconv"

	"dealbook/internal/forms"
	"dealbook/internal/listing"
	"dealbook/internal/models"
	"dealbook/internal/services"
)

type errorPage struct {
	layout
	Status  int
	Message string
}

type sortColumn struct {
	Key    string
	Label  string
	URL    string
	Active bool
	Dir    string
}

var dashboardColumns = []struct{ key, label string }{
	{services.SortByID, "№"},
	{services.SortByCode, "Номер договора"},
	{services.SortByDate, "Дата договора"},
	{services.SortByTotalSum, "Общая сумма"},
	{services.SortByCreditor, "Кредитор"},
	{services.SortByAgreementType, "Тип договора"},
}

type dashboardPage struct {
	layout
	*services.Dashboard
	Columns []sortColumn
}

func newDashboardPage(l layout, d *services.Dashboard) dashboardPage {
	page := dashboardPage{layout: l, Dashboard: d}
	for _, col := range dashboardColumns {
		sc := sortColumn{Key: col.key, Label: col.label, Dir: listing.DirAsc}
		if col.key == d.CurrentSort {
			sc.Active = true
			sc.Dir = d.CurrentDir
		}
		// Clicking the active column flips it; others start ascending.
		dir := listing.DirAsc
		if sc.Active {
			dir = d.RevDir
		}
		q := url.Values{"sort": {col.key}, "dir": {dir}}
		if d.Current != nil {
			q.Set("agreement", strconv.FormatUint(uint64(d.Current.ID), 10))
		}
		sc.URL = "/?" + q.Encode()
		page.Columns = append(page.Columns, sc)
	}
	return page
}

// SelectURL keeps the current ordering while selecting another agreement.
func (p dashboardPage) SelectURL(id uint) string {
	q := url.Values{
		"agreement": {strconv.FormatUint(uint64(id), 10)},
		"sort":      {p.CurrentSort},
		"dir":       {p.CurrentDir},
	}
	return "/?" + q.Encode()
}

type agreementFormPage struct {
	layout
	Form      forms.AgreementForm
	Errors    forms.Errors
	Creditors []models.Creditor
	Agreement *models.Agreement
	Action    string
	CancelURL string
}

type portfolioFormPage struct {
	layout
	Form      forms.PortfolioForm
	Errors    forms.Errors
	Agreement *models.Agreement
	Portfolio *models.Portfolio
	Action    string
	CancelURL string
}

type creditorListPage struct {
	layout
	Page *listing.PageResponse[models.Creditor]
}

func (p creditorListPage) PrevPage() int { return p.Page.Page - 1 }
func (p creditorListPage) NextPage() int { return p.Page.Page + 1 }

type creditorFormPage struct {
	layout
	Form     forms.CreditorForm
	Errors   forms.Errors
	Creditor *models.Creditor
	Action   string
}

type confirmDeletePage struct {
	layout
	Kind      string
	Object    string
	Warning   string
	Action    string
	CancelURL string
}
