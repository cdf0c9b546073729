package payment

// Typed views of common responses. Decode a Response into one of these with
// Response.Decode; fields the gateway omits stay zero.

type EntryTranResult struct {
	AccessID   string `gmo:"AccessID" json:"access_id"`
	AccessPass string `gmo:"AccessPass" json:"access_pass"`
}

type ExecTranResult struct {
	ACS          string `gmo:"ACS" json:"acs"`
	OrderID      string `gmo:"OrderID" json:"order_id"`
	Forward      string `gmo:"Forward" json:"forward"`
	Method       string `gmo:"Method" json:"method"`
	PayTimes     string `gmo:"PayTimes" json:"pay_times"`
	Approve      string `gmo:"Approve" json:"approve"`
	TranID       string `gmo:"TranID" json:"tran_id"`
	TranDate     string `gmo:"TranDate" json:"tran_date"`
	CheckString  string `gmo:"CheckString" json:"check_string"`
	ClientField1 string `gmo:"ClientField1" json:"client_field_1"`
	ClientField2 string `gmo:"ClientField2" json:"client_field_2"`
	ClientField3 string `gmo:"ClientField3" json:"client_field_3"`
}

type AlterTranResult struct {
	AccessID   string `gmo:"AccessID" json:"access_id"`
	AccessPass string `gmo:"AccessPass" json:"access_pass"`
	Forward    string `gmo:"Forward" json:"forward"`
	Approve    string `gmo:"Approve" json:"approve"`
	TranID     string `gmo:"TranID" json:"tran_id"`
	TranDate   string `gmo:"TranDate" json:"tran_date"`
}

type SearchTradeResult struct {
	OrderID      string `gmo:"OrderID" json:"order_id"`
	Status       string `gmo:"Status" json:"status"`
	ProcessDate  string `gmo:"ProcessDate" json:"process_date"`
	JobCd        string `gmo:"JobCd" json:"job_cd"`
	AccessID     string `gmo:"AccessID" json:"access_id"`
	AccessPass   string `gmo:"AccessPass" json:"access_pass"`
	ItemCode     string `gmo:"ItemCode" json:"item_code"`
	Amount       int64  `gmo:"Amount" json:"amount"`
	Tax          int64  `gmo:"Tax" json:"tax"`
	SiteID       string `gmo:"SiteID" json:"site_id"`
	MemberID     string `gmo:"MemberID" json:"member_id"`
	CardNo       string `gmo:"CardNo" json:"card_no"`
	Expire       string `gmo:"Expire" json:"expire"`
	Method       string `gmo:"Method" json:"method"`
	PayTimes     string `gmo:"PayTimes" json:"pay_times"`
	Forward      string `gmo:"Forward" json:"forward"`
	TranID       string `gmo:"TranID" json:"tran_id"`
	Approve      string `gmo:"Approve" json:"approve"`
	PayType      string `gmo:"PayType" json:"pay_type"`
	ClientField1 string `gmo:"ClientField1" json:"client_field_1"`
	ClientField2 string `gmo:"ClientField2" json:"client_field_2"`
	ClientField3 string `gmo:"ClientField3" json:"client_field_3"`
}

// VirtualAccountResult is the ExecTranGANB response.
type VirtualAccountResult struct {
	AccessID          string `gmo:"AccessID" json:"access_id"`
	BankCode          string `gmo:"BankCode" json:"bank_code"`
	BankName          string `gmo:"BankName" json:"bank_name"`
	BranchCode        string `gmo:"BranchCode" json:"branch_code"`
	BranchName        string `gmo:"BranchName" json:"branch_name"`
	AccountType       string `gmo:"AccountType" json:"account_type"`
	AccountNumber     string `gmo:"AccountNumber" json:"account_number"`
	AccountHolderName string `gmo:"AccountHolderName" json:"account_holder_name"`
	AvailableDate     string `gmo:"AvailableDate" json:"available_date"`
}

// BankTradeResult is the bank SearchTradeMulti response.
type BankTradeResult struct {
	Status            string `gmo:"Status" json:"status"`
	ProcessDate       string `gmo:"ProcessDate" json:"process_date"`
	AccessID          string `gmo:"AccessID" json:"access_id"`
	AccessPass        string `gmo:"AccessPass" json:"access_pass"`
	Amount            int64  `gmo:"Amount" json:"amount"`
	Tax               int64  `gmo:"Tax" json:"tax"`
	ClientField1      string `gmo:"ClientField1" json:"client_field_1"`
	ClientField2      string `gmo:"ClientField2" json:"client_field_2"`
	ClientField3      string `gmo:"ClientField3" json:"client_field_3"`
	PayType           string `gmo:"PayType" json:"pay_type"`
	GanbBankCode      string `gmo:"GanbBankCode" json:"ganb_bank_code"`
	GanbBankName      string `gmo:"GanbBankName" json:"ganb_bank_name"`
	GanbBranchCode    string `gmo:"GanbBranchCode" json:"ganb_branch_code"`
	GanbBranchName    string `gmo:"GanbBranchName" json:"ganb_branch_name"`
	GanbAccountType   string `gmo:"GanbAccountType" json:"ganb_account_type"`
	GanbAccountNumber string `gmo:"GanbAccountNumber" json:"ganb_account_number"`
	GanbAccountHolder string `gmo:"GanbAccountHolderName" json:"ganb_account_holder_name"`
	GanbExpireDays    string `gmo:"GanbExpireDays" json:"ganb_expire_days"`
	GanbExpireDate    string `gmo:"GanbExpireDate" json:"ganb_expire_date"`
	GanbTradeReason   string `gmo:"GanbTradeReason" json:"ganb_trade_reason"`
	GanbTradeClient   string `gmo:"GanbTradeClientName" json:"ganb_trade_client_name"`
	GanbTotalAmount   int64  `gmo:"GanbTotalTransferAmount" json:"ganb_total_transfer_amount"`
	GanbTotalCount    int    `gmo:"GanbTotalTransferCount" json:"ganb_total_transfer_count"`
}

type RecurringResult struct {
	ShopID          string `gmo:"ShopID" json:"shop_id"`
	RecurringID     string `gmo:"RecurringID" json:"recurring_id"`
	Amount          int64  `gmo:"Amount" json:"amount"`
	Tax             int64  `gmo:"Tax" json:"tax"`
	ChargeDay       string `gmo:"ChargeDay" json:"charge_day"`
	ChargeMonth     string `gmo:"ChargeMonth" json:"charge_month"`
	ChargeStartDate string `gmo:"ChargeStartDate" json:"charge_start_date"`
	ChargeStopDate  string `gmo:"ChargeStopDate" json:"charge_stop_date"`
	NextChargeDate  string `gmo:"NextChargeDate" json:"next_charge_date"`
	Method          string `gmo:"Method" json:"method"`
	CardNo          string `gmo:"CardNo" json:"card_no"`
	Expire          string `gmo:"Expire" json:"expire"`
}

// ContinuanceResult covers the carrier continuance exec and start calls.
type ContinuanceResult struct {
	AccessID   string `gmo:"AccessID" json:"access_id"`
	Token      string `gmo:"Token" json:"token"`
	StartURL   string `gmo:"StartURL" json:"start_url"`
	StartLimit string `gmo:"StartLimitDate" json:"start_limit_date"`
	OrderID    string `gmo:"OrderID" json:"order_id"`
	Status     string `gmo:"Status" json:"status"`
}

// CarrierSalesResult covers AuSales, SbSales, DocomoSales and the carrier
// cancel calls.
type CarrierSalesResult struct {
	OrderID string `gmo:"OrderID" json:"order_id"`
	Status  string `gmo:"Status" json:"status"`
	Amount  int64  `gmo:"Amount" json:"amount"`
	Tax     int64  `gmo:"Tax" json:"tax"`
}

type FraudScreeningResult struct {
	OrderID        string `gmo:"OrderID" json:"order_id"`
	Result         string `gmo:"FraudScreeningResult" json:"fraud_screening_result"`
	ResultDetail   string `gmo:"FraudScreeningResultDetail" json:"fraud_screening_result_detail"`
	ResultMessage  string `gmo:"FraudScreeningResultMessage" json:"fraud_screening_result_message"`
	ScreeningScore string `gmo:"FraudScreeningScore" json:"fraud_screening_score"`
}

type MemberResult struct {
	MemberID   string `gmo:"MemberID" json:"member_id"`
	MemberName string `gmo:"MemberName" json:"member_name"`
	DeleteFlag string `gmo:"DeleteFlag" json:"delete_flag"`
}

// CardResult is one stored card. SearchCard returns several; use
// CardsFrom to split them.
type CardResult struct {
	CardSeq     string `gmo:"CardSeq" json:"card_seq"`
	DefaultFlag string `gmo:"DefaultFlag" json:"default_flag"`
	CardName    string `gmo:"CardName" json:"card_name"`
	CardNo      string `gmo:"CardNo" json:"card_no"`
	Expire      string `gmo:"Expire" json:"expire"`
	HolderName  string `gmo:"HolderName" json:"holder_name"`
	DeleteFlag  string `gmo:"DeleteFlag" json:"delete_flag"`
}

// CardsFrom splits a SearchCard response into one CardResult per card.
func CardsFrom(res Response) ([]CardResult, error) {
	rows := res.Rows("CardSeq", "DefaultFlag", "CardName", "CardNo", "Expire", "HolderName", "DeleteFlag")
	cards := make([]CardResult, 0, len(rows))
	for _, row := range rows {
		var card CardResult
		if err := Response(row).Decode(&card); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
