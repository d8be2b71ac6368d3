package domain

const unknownDescription = "Unknown"

// Principle is the design principle an example illustrates.
type Principle string

// Principles covered by the catalog, in teaching order.
const (
	PrincipleSingleResponsibility Principle = "srp"
	PrincipleOpenClosed           Principle = "ocp"
	PrincipleLiskovSubstitution   Principle = "lsp"
	PrincipleInterfaceSegregation Principle = "isp"
	PrincipleDependencyInversion  Principle = "dip"
	PrincipleKISSYAGNI            Principle = "kiss-yagni"
	PrincipleDRY                  Principle = "dry"
)

// IsValid returns true if the principle is recognised.
func (p Principle) IsValid() bool {
	switch p {
	case PrincipleSingleResponsibility, PrincipleOpenClosed, PrincipleLiskovSubstitution,
		PrincipleInterfaceSegregation, PrincipleDependencyInversion, PrincipleKISSYAGNI,
		PrincipleDRY:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Principle) String() string {
	return string(p)
}

// Description returns the principle's full name.
func (p Principle) Description() string {
	switch p {
	case PrincipleSingleResponsibility:
		return "Single Responsibility Principle"
	case PrincipleOpenClosed:
		return "Open/Closed Principle"
	case PrincipleLiskovSubstitution:
		return "Liskov Substitution Principle"
	case PrincipleInterfaceSegregation:
		return "Interface Segregation Principle"
	case PrincipleDependencyInversion:
		return "Dependency Inversion Principle"
	case PrincipleKISSYAGNI:
		return "Keep It Simple / You Aren't Gonna Need It"
	case PrincipleDRY:
		return "Don't Repeat Yourself"
	default:
		return unknownDescription
	}
}

// Order returns the principle's position in the catalog.
// Unknown principles sort last.
func (p Principle) Order() int {
	for i, known := range AllPrinciples() {
		if known == p {
			return i
		}
	}
	return len(AllPrinciples())
}

// AllPrinciples returns every principle in teaching order.
func AllPrinciples() []Principle {
	return []Principle{
		PrincipleSingleResponsibility,
		PrincipleOpenClosed,
		PrincipleLiskovSubstitution,
		PrincipleInterfaceSegregation,
		PrincipleDependencyInversion,
		PrincipleKISSYAGNI,
		PrincipleDRY,
	}
}

// Variant marks an example as the flawed or the corrected design.
type Variant string

// Example variants.
const (
	// VariantGood is the design that follows the principle.
	VariantGood Variant = "good"

	// VariantBad is a counter-example that breaks the principle.
	VariantBad Variant = "bad"
)

// IsValid returns true if the variant is recognised.
func (v Variant) IsValid() bool {
	return v == VariantGood || v == VariantBad
}

// String returns the string representation.
func (v Variant) String() string {
	return string(v)
}

// Example describes one entry of the catalog.
type Example struct {
	// ID is "<principle>/<variant>", e.g. "ocp/good".
	ID string

	Principle Principle
	Variant   Variant

	// Title is a one-line name for listings.
	Title string

	// Summary explains what the example shows.
	Summary string

	// Notes lists the problems (bad) or benefits (good) of the design.
	Notes []string
}

// ExampleID builds the catalog identifier for a principle and variant.
func ExampleID(p Principle, v Variant) string {
	return p.String() + "/" + v.String()
}

// ExampleFilter narrows a catalog listing. Zero values match everything.
type ExampleFilter struct {
	Principle Principle
	Variant   Variant
}

// Matches returns true if the example passes the filter.
func (f ExampleFilter) Matches(e Example) bool {
	if f.Principle != "" && f.Principle != e.Principle {
		return false
	}
	if f.Variant != "" && f.Variant != e.Variant {
		return false
	}
	return true
}
