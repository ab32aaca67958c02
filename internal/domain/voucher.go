package domain

// Voucher is a redeemable reward. The catalog is fixed client-side; the
// backend owns redemption and the point ledger.
type Voucher struct {
	ID    string
	Title string
	Cost  int
}

// Vouchers is the reward catalog in display order.
var Vouchers = []Voucher{
	{ID: "v1", Title: "Voucher 1x Perjalanan Trans Padang", Cost: 100},
	{ID: "v2", Title: "Voucher 1 Tiket Masuk Museum Adityawarman", Cost: 200},
	{ID: "v3", Title: "Voucher 1 Tiket Masuk Pulau Angso Duo", Cost: 2000},
}

// VoucherByID looks a voucher up in the catalog, nil when unknown.
func VoucherByID(id string) *Voucher {
	for i := range Vouchers {
		if Vouchers[i].ID == id {
			return &Vouchers[i]
		}
	}
	return nil
}
