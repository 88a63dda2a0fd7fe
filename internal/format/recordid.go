package format

import "fmt"

// IDCategory selects the display prefix for a record id.
type IDCategory string

// Record categories shown in the app.
const (
	CategoryUser       IDCategory = "User"
	CategoryLoan       IDCategory = "Loan"
	CategoryFD         IDCategory = "FD"
	CategoryRD         IDCategory = "RD"
	CategoryWithdrawal IDCategory = "Withdrawal"
)

// UnsupportedIDCategoryError reports a category with no display prefix.
type UnsupportedIDCategoryError struct {
	Category IDCategory
}

func (e *UnsupportedIDCategoryError) Error() string {
	return fmt.Sprintf("unsupported id category: %q", string(e.Category))
}

// Withdrawals use a short code; everything else pads to six digits.
var idFormats = map[IDCategory]struct {
	prefix string
	width  int
}{
	CategoryUser:       {prefix: "HMU", width: 6},
	CategoryLoan:       {prefix: "HML", width: 6},
	CategoryFD:         {prefix: "HMF", width: 6},
	CategoryRD:         {prefix: "HMR", width: 6},
	CategoryWithdrawal: {prefix: "HMW", width: 2},
}

// RecordID produces the fixed-prefix, zero-padded display code for an
// entity id, e.g. RecordID(7, CategoryUser) == "HMU000007". Ids wider
// than the pad width render unpadded after the prefix.
func RecordID(id int64, category IDCategory) (string, error) {
	f, ok := idFormats[category]
	if !ok {
		return "", &UnsupportedIDCategoryError{Category: category}
	}
	return fmt.Sprintf("%s%0*d", f.prefix, f.width, id), nil
}
