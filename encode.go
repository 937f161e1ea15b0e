package assetbook

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The engine computes over in-memory snapshots only; this file is the
// boundary where those snapshots are read from and written to their
// on-disk forms: the portfolio as a single JSON document, the realized and
// expense ledgers as append-friendly JSONL streams, and the net-worth
// history as a two-column CSV.

// positionRecord is a specialized struct for encoding and decoding positions.
type positionRecord struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity Quantity        `json:"quantity"`
	Currency string          `json:"currency"`
	AvgCost  decimal.Decimal `json:"avgCost"`
}

func (r positionRecord) position(class AssetClass) Position {
	return Position{
		ID:       r.ID,
		Name:     r.Name,
		Class:    class,
		Quantity: r.Quantity,
		AvgCost:  M(r.AvgCost, r.Currency),
	}
}

func record(p Position) positionRecord {
	return positionRecord{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Currency: p.Currency(),
		AvgCost:  p.AvgCost.Decimal(),
	}
}

// portfolioDocument is the on-disk shape of the portfolio: one document,
// partitioned by asset class.
type portfolioDocument struct {
	Stocks []positionRecord `json:"stocks"`
	Crypto []positionRecord `json:"crypto"`
}

// EncodePortfolio writes the portfolio as a single indented JSON document.
func EncodePortfolio(w io.Writer, pf *Portfolio) error {
	doc := portfolioDocument{
		Stocks: make([]positionRecord, 0, len(pf.equities)),
		Crypto: make([]positionRecord, 0, len(pf.cryptos)),
	}
	for _, p := range pf.equities {
		doc.Stocks = append(doc.Stocks, record(p))
	}
	for _, p := range pf.cryptos {
		doc.Crypto = append(doc.Crypto, record(p))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DecodePortfolio reads a portfolio document. An empty stream decodes to an
// empty portfolio, matching a data file that does not exist yet.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var doc portfolioDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return NewPortfolio(), nil
		}
		return nil, fmt.Errorf("could not decode portfolio: %w", err)
	}

	pf := NewPortfolio()
	for _, rec := range doc.Stocks {
		pf.equities = append(pf.equities, rec.position(Equity))
	}
	for _, rec := range doc.Crypto {
		pf.cryptos = append(pf.cryptos, rec.position(Crypto))
	}
	return pf, nil
}

// realizedRecord is a specialized struct for decoding realized events.
type realizedRecord struct {
	ID        string          `json:"id"`
	Date      Date            `json:"date"`
	Name      string          `json:"name"`
	Class     AssetClass      `json:"class"`
	Currency  string          `json:"currency"`
	Quantity  Quantity        `json:"quantity"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	PnL       decimal.Decimal `json:"pnl"`
	ROI       Percent         `json:"roi"`
}

// EncodeRealizedEvent appends a single event as one JSONL line.
func EncodeRealizedEvent(w io.Writer, e RealizedEvent) error {
	var obj jsonObjectWriter
	obj.Append("id", e.ID)
	obj.Append("date", e.Date)
	obj.Append("name", e.Name)
	obj.Append("class", e.Class)
	obj.Append("currency", e.Currency)
	obj.Append("quantity", e.Quantity)
	obj.Append("sellPrice", e.SellPrice.Decimal())
	obj.Append("unitCost", e.UnitCost.Decimal())
	obj.Append("pnl", e.PnL.Decimal())
	obj.Append("roi", float64(e.ROI))

	line, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode realized event %q: %w", e.ID, err)
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

// EncodeRealizedLedger writes the whole ledger as a JSONL stream.
func EncodeRealizedLedger(w io.Writer, l *RealizedLedger) error {
	for e := range l.Events() {
		if err := EncodeRealizedEvent(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRealizedLedger reads a JSONL stream of realized events.
func DecodeRealizedLedger(r io.Reader) (*RealizedLedger, error) {
	ledger := NewRealizedLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var rec realizedRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode realized event line %q: %w", string(lineBytes), err)
		}
		ledger.Append(RealizedEvent{
			ID:        rec.ID,
			Date:      rec.Date,
			Name:      rec.Name,
			Class:     rec.Class,
			Currency:  rec.Currency,
			Quantity:  rec.Quantity,
			SellPrice: M(rec.SellPrice, rec.Currency),
			UnitCost:  M(rec.UnitCost, rec.Currency),
			PnL:       M(rec.PnL, rec.Currency),
			ROI:       rec.ROI,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// expenseRecord is a specialized struct for decoding expenses.
type expenseRecord struct {
	Date     Date            `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
}

// EncodeExpense appends a single expense as one JSONL line.
func EncodeExpense(w io.Writer, e Expense) error {
	var obj jsonObjectWriter
	obj.Append("date", e.Date)
	obj.Append("amount", e.Amount.Decimal())
	obj.Append("currency", e.Amount.Currency())
	obj.Append("category", e.Category)

	line, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode expense: %w", err)
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

// EncodeExpenseLedger writes the whole ledger as a JSONL stream.
func EncodeExpenseLedger(w io.Writer, l *ExpenseLedger) error {
	for e := range l.Expenses() {
		if err := EncodeExpense(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeExpenseLedger reads a JSONL stream of expenses.
func DecodeExpenseLedger(r io.Reader) (*ExpenseLedger, error) {
	ledger := NewExpenseLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var rec expenseRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode expense line %q: %w", string(lineBytes), err)
		}
		if err := ledger.Append(Expense{
			Date:     rec.Date,
			Amount:   M(rec.Amount, rec.Currency),
			Category: rec.Category,
		}); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeHistory writes the net-worth series as "date,networth" CSV rows.
func EncodeHistory(w io.Writer, h *NetWorthHistory) error {
	cw := csv.NewWriter(w)
	for on, value := range h.Values() {
		if err := cw.Write([]string{on.String(), value.Decimal().String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeHistory reads a "date,networth" CSV stream. Values are denominated
// in the given reporting currency, which the CSV itself does not carry.
func DecodeHistory(r io.Reader, reporting string) (*NetWorthHistory, error) {
	h := NewNetWorthHistory()
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return h, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode history: %w", err)
		}
		on, err := ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("could not decode history date: %w", err)
		}
		value, err := decimal.NewFromString(row[1])
		if err != nil {
			return nil, fmt.Errorf("could not decode history value %q: %w", row[1], err)
		}
		if err := h.Record(on, M(value, reporting)); err != nil {
			return nil, err
		}
	}
}
