package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Response
	}{
		{
			name: "simple pairs",
			body: "AccessID=a41d83f1&AccessPass=d72eca02",
			want: Response{"AccessID": "a41d83f1", "AccessPass": "d72eca02"},
		},
		{
			name: "value keeps later equals signs",
			body: "CheckString=abc=def&TranID=1",
			want: Response{"CheckString": "abc=def", "TranID": "1"},
		},
		{
			name: "missing equals gives empty value",
			body: "PayTimes&Method=1",
			want: Response{"PayTimes": "", "Method": "1"},
		},
		{
			name: "empty segments skipped",
			body: "&&OrderID=1&&",
			want: Response{"OrderID": "1"},
		},
		{
			name: "later duplicate wins",
			body: "Status=AUTH&Status=CAPTURE",
			want: Response{"Status": "CAPTURE"},
		},
		{
			name: "values are not percent decoded",
			body: "RetURL=https%3A%2F%2Fexample.com",
			want: Response{"RetURL": "https%3A%2F%2Fexample.com"},
		},
		{
			name: "trailing newline trimmed",
			body: "OrderID=1\r\n",
			want: Response{"OrderID": "1"},
		},
		{
			name: "empty body",
			body: "",
			want: Response{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseResponse(tt.body))
		})
	}
}

func TestResponse_List(t *testing.T) {
	res := ParseResponse("ErrCode=BA1|E01&ErrInfo=BA1040001|E01170001|100&Empty=")

	assert.Equal(t, []string{"BA1", "E01"}, res.List("ErrCode"))
	assert.Equal(t, []string{"BA1040001", "E01170001", "100"}, res.List("ErrInfo"))
	assert.Nil(t, res.List("Empty"))
	assert.Nil(t, res.List("Absent"))
}

func TestResponse_Rows(t *testing.T) {
	res := ParseResponse("CardSeq=0|1|2&CardNo=*************111|*************222&Expire=2512|2601|2703")

	rows := res.Rows("CardSeq", "CardNo", "Expire")
	require.Len(t, rows, 3)
	assert.Equal(t, map[string]string{"CardSeq": "0", "CardNo": "*************111", "Expire": "2512"}, rows[0])
	assert.Equal(t, map[string]string{"CardSeq": "2", "CardNo": "", "Expire": "2703"}, rows[2])

	assert.Empty(t, res.Rows("Missing"))
}

func TestResponse_Decode(t *testing.T) {
	res := ParseResponse("OrderID=ORD-1&Status=CAPTURE&Amount=1200&Tax=&Unknown=x")

	var out SearchTradeResult
	require.NoError(t, res.Decode(&out))
	assert.Equal(t, "ORD-1", out.OrderID)
	assert.Equal(t, "CAPTURE", out.Status)
	assert.Equal(t, int64(1200), out.Amount)
	assert.Zero(t, out.Tax)
}

func TestResponse_DecodeInvalidNumber(t *testing.T) {
	var out SearchTradeResult
	err := ParseResponse("Amount=abc").Decode(&out)
	assert.Error(t, err)
}

func TestCardsFrom(t *testing.T) {
	res := ParseResponse("CardSeq=0|1&DefaultFlag=1|0&CardNo=*1111|*2222&Expire=2512|2601&HolderName=A|B&CardName=|&DeleteFlag=0|0")

	cards, err := CardsFrom(res)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, CardResult{CardSeq: "1", DefaultFlag: "0", CardNo: "*2222", Expire: "2601", HolderName: "B", DeleteFlag: "0"}, cards[1])
}

func TestParseTransferRecords(t *testing.T) {
	body := "20240401|ﾔﾏﾀﾞ ﾀﾛｳ|GMOあおぞら|法人営業部|10000\r\n" +
		"\n" +
		"20240402|ｽｽﾞｷ|みずほ|本店|2500\n" +
		"20240403|SHORT\n"

	records := ParseTransferRecords(body)
	require.Len(t, records, 3)
	assert.Equal(t, TransferRecord{
		TransferDate:       "20240401",
		TransferName:       "ﾔﾏﾀﾞ ﾀﾛｳ",
		TransferBankName:   "GMOあおぞら",
		TransferBranchName: "法人営業部",
		TransferAmount:     "10000",
	}, records[0])
	assert.Equal(t, "2500", records[1].TransferAmount)
	assert.Equal(t, TransferRecord{TransferDate: "20240403", TransferName: "SHORT"}, records[2])

	assert.Empty(t, ParseTransferRecords(""))
}

func TestParseResultFile(t *testing.T) {
	rows, err := parseResultFile("R-1,1000,20240401\nR-2,500\n")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"R-1", "1000", "20240401"}, {"R-2", "500"}}, rows)

	_, err = parseResultFile("\"unterminated")
	assert.Error(t, err)
}

func TestIsErrorBody(t *testing.T) {
	assert.True(t, isErrorBody("ErrCode=BA1&ErrInfo=BA1010001"))
	assert.False(t, isErrorBody("20240401|A|B|C|100"))
}

func TestDecodeShiftJIS(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String("CustomerName=山田太郎")
	require.NoError(t, err)

	got, err := decodeShiftJIS(strings.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "CustomerName=山田太郎", got)
}
