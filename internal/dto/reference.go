package dto

// ReferenceData lists every enumeration a client needs to build expense, budget and bank forms
type ReferenceData struct {
	Categories     []string            `json:"categories"`
	SubCategories  map[string][]string `json:"sub_categories"`
	FamilyMembers  []string            `json:"family_members"`
	Beneficiaries  []string            `json:"beneficiaries"`
	DepositSources []string            `json:"deposit_sources"`
	Periods        []string            `json:"periods"`
	Currency       string              `json:"currency"`
}

// SeedRequest sizes the generated demo data
type SeedRequest struct {
	Days  int `query:"days" validate:"omitempty,min=1,max=365"`
	Count int `query:"count" validate:"omitempty,min=1,max=1000"`
}

// SeedResponse reports what the demo generator inserted
type SeedResponse struct {
	Expenses         int `json:"expenses"`
	BankTransactions int `json:"bank_transactions"`
	Budgets          int `json:"budgets"`
}
