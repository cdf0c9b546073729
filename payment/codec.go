package payment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/encoding/japanese"
)

// Response is a decoded gateway body.
type Response map[string]string

// ParseResponse decodes a "Key=Value&Key=Value" body. Values are taken as-is;
// the gateway does not percent-encode them.
func ParseResponse(body string) Response {
	res := make(Response)
	for _, seg := range strings.Split(strings.TrimSpace(body), "&") {
		if seg == "" {
			continue
		}
		key, value, _ := strings.Cut(seg, "=")
		if key == "" {
			continue
		}
		res[key] = value
	}
	return res
}

func (r Response) Get(key string) string {
	return r[key]
}

// List splits a multi-value field on "|". An absent or empty field gives nil.
func (r Response) List(key string) []string {
	v := r[key]
	if v == "" {
		return nil
	}
	return strings.Split(v, "|")
}

// Rows zips several multi-value fields into one map per position. Shorter
// lists are padded with empty strings.
func (r Response) Rows(keys ...string) []map[string]string {
	lists := make([][]string, len(keys))
	n := 0
	for i, k := range keys {
		lists[i] = r.List(k)
		if len(lists[i]) > n {
			n = len(lists[i])
		}
	}

	rows := make([]map[string]string, n)
	for i := range rows {
		row := make(map[string]string, len(keys))
		for j, k := range keys {
			if i < len(lists[j]) {
				row[k] = lists[j][i]
			} else {
				row[k] = ""
			}
		}
		rows[i] = row
	}
	return rows
}

// Decode fills the struct pointed to by v using `gmo:"Key"` tags. Numeric
// fields accept the gateway's string values.
func (r Response) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "gmo",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(map[string]string(r)); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (r Response) isError() bool {
	_, ok := r[string(ErrInfo)]
	return ok
}

// TransferRecord is one line of an InquiryTransferGANB success body.
type TransferRecord struct {
	TransferDate       string `json:"TransferDate"`
	TransferName       string `json:"TransferName"`
	TransferBankName   string `json:"TransferBankName"`
	TransferBranchName string `json:"TransferBranchName"`
	TransferAmount     string `json:"TransferAmount"`
}

// ParseTransferRecords decodes the line-oriented transfer history format:
// TransferDate|TransferName|TransferBankName|TransferBranchName|TransferAmount.
// Blank lines are skipped and missing columns are left empty.
func ParseTransferRecords(body string) []TransferRecord {
	var records []TransferRecord
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "|")
		col := func(i int) string {
			if i < len(cols) {
				return cols[i]
			}
			return ""
		}
		records = append(records, TransferRecord{
			TransferDate:       col(0),
			TransferName:       col(1),
			TransferBankName:   col(2),
			TransferBranchName: col(3),
			TransferAmount:     col(4),
		})
	}
	return records
}

func parseResultFile(body string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse result file: %w", err)
	}
	return rows, nil
}

func isErrorBody(body string) bool {
	return strings.HasPrefix(body, string(ErrCode)+"=")
}

// decodeShiftJIS converts a gateway body to UTF-8.
func decodeShiftJIS(r io.Reader) (string, error) {
	b, err := io.ReadAll(japanese.ShiftJIS.NewDecoder().Reader(r))
	if err != nil {
		return "", fmt.Errorf("decode Shift_JIS body: %w", err)
	}
	return string(b), nil
}
