package invoices

// Record is one row of the invoices table, excluding the embedding and
// full-text vectors (those are retrieval machinery, never part of a result).
// JSON field names match the table's quoted column names so tool output is
// a flat mapping of schema columns to values.
type Record struct {
	ID                  int64   `json:"ID"`
	FiscalWeekBeginDate string  `json:"FiscalWeekBeginDate"`
	InvoiceDate         string  `json:"Invoice Date"`
	Region              string  `json:"Region"`
	FacilityName        string  `json:"Facility Name"`
	BranchID            string  `json:"Branch Id"`
	Channel             string  `json:"Channel"`
	SoldToName          string  `json:"soldto_name"`
	ShipToName          string  `json:"shipto_name"`
	ProductType         string  `json:"Product Type"`
	MajorCode           string  `json:"Major Code"`
	MajorDesc           string  `json:"Major Desc"`
	MidCode             string  `json:"Mid Code"`
	MidDesc             string  `json:"Mid Desc"`
	MinorCode           string  `json:"Minor Code"`
	MinorDesc           string  `json:"Minor Desc"`
	Item                string  `json:"Item"`
	ItemDesc            string  `json:"Item Desc"`
	Sales               float64 `json:"Sales"`
	GrossProfit         float64 `json:"Gross Profit"`
	GMPercent           float64 `json:"GM Percent"`
	TLE                 float64 `json:"TLE"`
}

// Match is a Record annotated with a retrieval score. Distance is cosine
// distance (lower = more similar) for vector search; Rank is the ts_rank
// score for keyword search. Only the field relevant to the search that
// produced the match is populated.
type Match struct {
	Record
	Distance float64 `json:"distance,omitempty"`
	Rank     float64 `json:"rank,omitempty"`
}

// EmbeddingText returns the concatenation of a record's fields used as
// embedding input, mirroring what the ingester feeds the embedding model.
func (r Record) EmbeddingText() string {
	fields := []string{
		formatInt(r.ID), r.FiscalWeekBeginDate, r.InvoiceDate, r.Region,
		r.FacilityName, r.BranchID, r.Channel, r.SoldToName, r.ShipToName,
		r.ProductType, r.MajorCode, r.MajorDesc, r.MidCode, r.MidDesc,
		r.MinorCode, r.MinorDesc, r.Item, r.ItemDesc,
		formatFloat(r.Sales), formatFloat(r.GrossProfit),
		formatFloat(r.GMPercent), formatFloat(r.TLE),
	}

	return joinFields(fields)
}
