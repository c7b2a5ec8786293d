package models

import "fmt"

// Category is the closed set of expense categories
type Category string

const (
	CategoryFood             Category = "Food"
	CategoryUtilities        Category = "Utilities"
	CategoryGroceries        Category = "Groceries"
	CategoryKids             Category = "Kids"
	CategoryMedical          Category = "Medical"
	CategoryHouseMaintenance Category = "House Maintenance"
	CategoryFuel             Category = "Fuel"
	CategoryMisc             Category = "Misc"
)

// FamilyMember is one of the household members who can pay for or benefit from an expense
type FamilyMember string

const (
	MemberFather      FamilyMember = "Father"
	MemberMother      FamilyMember = "Mother"
	MemberSaif        FamilyMember = "Saif"
	MemberSaifWife    FamilyMember = "Saif Wife"
	MemberDaughter    FamilyMember = "Daughter"
	MemberBrother     FamilyMember = "Brother"
	MemberBrotherWife FamilyMember = "Brother Wife"
	MemberKids        FamilyMember = "Kids"
)

// Beneficiary is either a FamilyMember or BeneficiaryShared
type Beneficiary string

// BeneficiaryShared marks an expense that benefits the whole household
const BeneficiaryShared Beneficiary = "Shared"

// DepositSourceOther is accepted as the source of a deposit made by someone outside the household
const DepositSourceOther = "Other"

var categories = []Category{
	CategoryFood,
	CategoryUtilities,
	CategoryGroceries,
	CategoryKids,
	CategoryMedical,
	CategoryHouseMaintenance,
	CategoryFuel,
	CategoryMisc,
}

var familyMembers = []FamilyMember{
	MemberFather,
	MemberMother,
	MemberSaif,
	MemberSaifWife,
	MemberDaughter,
	MemberBrother,
	MemberBrotherWife,
	MemberKids,
}

var subCategories = map[Category][]string{
	CategoryFood:             {"Restaurant", "Takeaway", "Snacks", "Bakery"},
	CategoryUtilities:        {"Electricity", "Gas", "Water", "Internet", "Mobile"},
	CategoryGroceries:        {"Vegetables", "Fruits", "Meat", "Dairy", "Household Supplies"},
	CategoryKids:             {"School Fees", "Books", "Toys", "Clothing"},
	CategoryMedical:          {"Doctor", "Medicines", "Lab Tests", "Hospital"},
	CategoryHouseMaintenance: {"Repairs", "Cleaning", "Furniture", "Appliances"},
	CategoryFuel:             {"Petrol", "Diesel", "CNG"},
	CategoryMisc:             {"Gifts", "Charity", "Clothing", "Other"},
}

// AllCategories returns every category in display order
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// AllFamilyMembers returns every family member in display order
func AllFamilyMembers() []FamilyMember {
	out := make([]FamilyMember, len(familyMembers))
	copy(out, familyMembers)
	return out
}

// SubCategoriesFor returns the sub-categories allowed under a category
func SubCategoriesFor(c Category) []string {
	subs := subCategories[c]
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// AllBeneficiaries returns every family member followed by BeneficiaryShared
func AllBeneficiaries() []Beneficiary {
	out := make([]Beneficiary, 0, len(familyMembers)+1)
	for _, m := range familyMembers {
		out = append(out, Beneficiary(m))
	}
	return append(out, BeneficiaryShared)
}

// DepositSources returns the values accepted as the source of a deposit
func DepositSources() []string {
	out := make([]string, 0, len(familyMembers)+1)
	for _, m := range familyMembers {
		out = append(out, string(m))
	}
	return append(out, DepositSourceOther)
}

func (c Category) IsValid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

// HasSubCategory reports whether sub is allowed under c. The empty string is always allowed.
func (c Category) HasSubCategory(sub string) bool {
	if sub == "" {
		return true
	}
	for _, s := range subCategories[c] {
		if s == sub {
			return true
		}
	}
	return false
}

func (m FamilyMember) IsValid() bool {
	for _, v := range familyMembers {
		if m == v {
			return true
		}
	}
	return false
}

func (b Beneficiary) IsValid() bool {
	return b == BeneficiaryShared || FamilyMember(b).IsValid()
}

func (b Beneficiary) IsShared() bool {
	return b == BeneficiaryShared
}

// IsValidDepositSource checks a deposit's from_member value
func IsValidDepositSource(source string) bool {
	return source == DepositSourceOther || FamilyMember(source).IsValid()
}

// ParseCategory converts a raw value into a Category
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
	return c, nil
}

// ParseFamilyMember converts a raw value into a FamilyMember
func ParseFamilyMember(raw string) (FamilyMember, error) {
	m := FamilyMember(raw)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFamilyMember, raw)
	}
	return m, nil
}

// ParseBeneficiary converts a raw value into a Beneficiary
func ParseBeneficiary(raw string) (Beneficiary, error) {
	b := Beneficiary(raw)
	if !b.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBeneficiary, raw)
	}
	return b, nil
}
