package ledger

import "github.com/shopspring/decimal"

// OutstandingBalance folds journal voucher details into the balance owed
// by one employee on the given receivables account:
//
//	Σ (debit - credit) over lines matching both account and employee
//
// A nil detail or a voucher with no matching line contributes zero; one
// bad record must not abort the whole aggregation.
func OutstandingBalance(details []*EntryDetail, accountNo string, employeeID int64) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range details {
		if d == nil {
			continue
		}
		for _, line := range d.Lines {
			if line.AccountNo == accountNo && line.EmployeeID == employeeID {
				sum = sum.Add(line.Debit).Sub(line.Credit)
				break
			}
		}
	}
	return sum
}
