package invoices

// recordColumns is the projection shared by every fixed query: all schema
// columns except the embedding and tsv vectors, quoted exactly as declared.
const recordColumns = `
		"ID", "FiscalWeekBeginDate", "Invoice Date", "Region", "Facility Name",
		"Branch Id", "Channel", "soldto_name", "shipto_name", "Product Type",
		"Major Code", "Major Desc", "Mid Code", "Mid Desc", "Minor Code",
		"Minor Desc", "Item", "Item Desc", "Sales", "Gross Profit",
		"GM Percent", "TLE"`

// similaritySearchQuery pages and counts in one execution: the window
// aggregate runs over the threshold-filtered set, so total_relevant and the
// returned page come from the same snapshot (no read skew between a separate
// count and page query under concurrent writes).
const similaritySearchQuery = `
	SELECT` + recordColumns + `,
		embedding <=> $1 AS distance,
		COUNT(*) OVER () AS total_relevant
	FROM invoices
	WHERE embedding <=> $1 < $2
	ORDER BY distance ASC
	LIMIT $3`

const keywordSearchQuery = `
	SELECT` + recordColumns + `,
		ts_rank(tsv, websearch_to_tsquery('english', $1)) AS rank
	FROM invoices
	WHERE tsv @@ websearch_to_tsquery('english', $1)
	ORDER BY rank DESC
	LIMIT $2`

const fetchByInvoiceIDQuery = `
	SELECT` + recordColumns + `
	FROM invoices
	WHERE "ID" = $1
	LIMIT 1`
