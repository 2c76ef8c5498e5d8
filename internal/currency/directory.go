package currency

// Directory is an immutable snapshot of exchange rates keyed by currency ID.
// It is safe for concurrent use.
type Directory struct {
	byID map[int64]*Currency
}

// NewDirectory builds a directory from a list of currencies
func NewDirectory(currencies []*Currency) *Directory {
	byID := make(map[int64]*Currency, len(currencies))
	for _, c := range currencies {
		if c == nil {
			continue
		}
		cp := *c
		byID[c.ID] = &cp
	}
	return &Directory{byID: byID}
}

// Get returns the currency with the given ID, or nil
func (d *Directory) Get(id int64) *Currency {
	return d.byID[id]
}

// Has reports whether the directory knows the currency
func (d *Directory) Has(id int64) bool {
	_, ok := d.byID[id]
	return ok
}

// Rate returns the exchange rate of a currency.
// Unknown currencies are treated as base units: the rate is 1 and ok is false.
func (d *Directory) Rate(id int64) (rate float64, ok bool) {
	c, ok := d.byID[id]
	if !ok {
		return 1, false
	}
	return c.ExchangeRate, true
}

// ToBase converts an amount in the given currency to base units
func (d *Directory) ToBase(amount float64, id int64) float64 {
	rate, _ := d.Rate(id)
	return amount / rate
}

// FromBase converts an amount in base units to the given currency
func (d *Directory) FromBase(amountBase float64, id int64) float64 {
	rate, _ := d.Rate(id)
	return amountBase * rate
}

// Convert converts amount from one currency to another through base units.
// ok is false when either currency was unknown and defaulted to rate 1.
// No rounding is applied.
func (d *Directory) Convert(amount float64, fromID, toID int64) (float64, bool) {
	_, fromOK := d.Rate(fromID)
	_, toOK := d.Rate(toID)
	return d.FromBase(d.ToBase(amount, fromID), toID), fromOK && toOK
}

// Len returns the number of currencies in the directory
func (d *Directory) Len() int {
	return len(d.byID)
}
