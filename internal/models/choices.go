package models

import "strconv"

// Choice is a select option rendered by the forms.
type Choice struct {
	Value int
	Label string
}

// CreditorType is the kind of lending institution.
type CreditorType int

const (
	CreditorTypeBank CreditorType = 1
	CreditorTypeMFKO CreditorType = 2
	CreditorTypeMKO  CreditorType = 3
)

var creditorTypeLabels = map[CreditorType]string{
	CreditorTypeBank: "Банк",
	CreditorTypeMFKO: "МФКО",
	CreditorTypeMKO:  "МКО",
}

// Valid reports whether t is a known creditor type.
func (t CreditorType) Valid() bool { _, ok := creditorTypeLabels[t]; return ok }

// Label returns the display string, or the raw code for unknown values.
func (t CreditorType) Label() string { return labelOf(creditorTypeLabels, t) }

// CreditorTypeChoices returns the select options in code order.
func CreditorTypeChoices() []Choice { return choicesOf(creditorTypeLabels) }

// AgreementType is the legal form of an agreement.
type AgreementType int

const (
	AgreementTypeCession     AgreementType = 1
	AgreementTypeOutsourcing AgreementType = 2
)

var agreementTypeLabels = map[AgreementType]string{
	AgreementTypeCession:     "Цессия",
	AgreementTypeOutsourcing: "Аутсорсинг",
}

// Valid reports whether t is a known agreement type.
func (t AgreementType) Valid() bool { _, ok := agreementTypeLabels[t]; return ok }

// Label returns the display string, or the raw code for unknown values.
func (t AgreementType) Label() string { return labelOf(agreementTypeLabels, t) }

// AgreementTypeChoices returns the select options in code order.
func AgreementTypeChoices() []Choice { return choicesOf(agreementTypeLabels) }

// PortfolioType is the legal form of a portfolio placement.
type PortfolioType int

const (
	PortfolioTypeCession PortfolioType = 1
)

var portfolioTypeLabels = map[PortfolioType]string{
	PortfolioTypeCession: "Цессия",
}

// Valid reports whether t is a known portfolio type.
func (t PortfolioType) Valid() bool { _, ok := portfolioTypeLabels[t]; return ok }

// Label returns the display string, or the raw code for unknown values.
func (t PortfolioType) Label() string { return labelOf(portfolioTypeLabels, t) }

// PortfolioTypeChoices returns the select options in code order.
func PortfolioTypeChoices() []Choice { return choicesOf(portfolioTypeLabels) }

// ProcessType is the collection work stage a portfolio is placed for.
type ProcessType int

const (
	ProcessTypeLegal       ProcessType = 1
	ProcessTypeEnforcement ProcessType = 2
	ProcessTypeHard        ProcessType = 3
	ProcessTypeSoft        ProcessType = 4
	ProcessTypeSeizure     ProcessType = 5
	ProcessTypeBankruptcy  ProcessType = 6
	ProcessTypeFull        ProcessType = 7
)

var processTypeLabels = map[ProcessType]string{
	ProcessTypeLegal:       "Лигал",
	ProcessTypeEnforcement: "ИП",
	ProcessTypeHard:        "Хард",
	ProcessTypeSoft:        "Софт",
	ProcessTypeSeizure:     "Изъятие",
	ProcessTypeBankruptcy:  "Банкротство",
	ProcessTypeFull:        "Фулл",
}

// Valid reports whether t is a known process type.
func (t ProcessType) Valid() bool { _, ok := processTypeLabels[t]; return ok }

// Label returns the display string, or the raw code for unknown values.
func (t ProcessType) Label() string { return labelOf(processTypeLabels, t) }

// ProcessTypeChoices returns the select options in code order.
func ProcessTypeChoices() []Choice { return choicesOf(processTypeLabels) }

func labelOf[T ~int](labels map[T]string, v T) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return strconv.Itoa(int(v))
}

func choicesOf[T ~int](labels map[T]string) []Choice {
	out := make([]Choice, 0, len(labels))
	for code := T(1); len(out) < len(labels); code++ {
		if l, ok := labels[code]; ok {
			out = append(out, Choice{Value: int(code), Label: l})
		}
	}
	return out
}
