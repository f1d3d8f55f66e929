package domain

// Supplier represents a supplier record
type Supplier struct {
	ID            string
	CompanyName   string
	ContactName   string
	ContactNumber string
}

// NumberedSupplier pairs a supplier with its 1-based display position
type NumberedSupplier struct {
	Number   int
	Supplier Supplier
}
