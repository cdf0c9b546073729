package payment

// Field is a parameter name as it appears on the wire.
type Field string

// Credentials.
const (
	ShopID   Field = "ShopID"
	ShopPass Field = "ShopPass"
	SiteID   Field = "SiteID"
	SitePass Field = "SitePass"
)

// Transaction fields.
const (
	AccessID                  Field = "AccessID"
	AccessPass                Field = "AccessPass"
	AccountHolderOptionalName Field = "AccountHolderOptionalName"
	AccountTiming             Field = "AccountTiming"
	AccountTimingKbn          Field = "AccountTimingKbn"
	Amount                    Field = "Amount"
	CancelAmount              Field = "CancelAmount"
	CancelTax                 Field = "CancelTax"
	CardName                  Field = "CardName"
	CardNo                    Field = "CardNo"
	CardPass                  Field = "CardPass"
	CardSeq                   Field = "CardSeq"
	ChargeDate                Field = "ChargeDate"
	ChargeDay                 Field = "ChargeDay"
	ChargeMonth               Field = "ChargeMonth"
	ChargeStartDate           Field = "ChargeStartDate"
	ChargeStopDate            Field = "ChargeStopDate"
	ClientField1              Field = "ClientField1"
	ClientField2              Field = "ClientField2"
	ClientField3              Field = "ClientField3"
	ClientFieldFlag           Field = "ClientFieldFlag"
	Commodity                 Field = "Commodity"
	ConfirmBaseDate           Field = "ConfirmBaseDate"
	Convenience               Field = "Convenience"
	CreateMember              Field = "CreateMember"
	CustomerKana              Field = "CustomerKana"
	CustomerName              Field = "CustomerName"
	DateFrom                  Field = "DateFrom"
	DateTo                    Field = "DateTo"
	DefaultFlag               Field = "DefaultFlag"
	DeviceCategory            Field = "DeviceCategory"
	DispMailAddress           Field = "DispMailAddress"
	DispPhoneNumber           Field = "DispPhoneNumber"
	DispShopName              Field = "DispShopName"
	DispShopURL               Field = "DispShopUrl"
	DocomoDisp1               Field = "DocomoDisp1"
	DocomoDisp2               Field = "DocomoDisp2"
	ErrorRcvURL               Field = "ErrorRcvURL"
	Expire                    Field = "Expire"
	FirstAccountDate          Field = "FirstAccountDate"
	FirstAmount               Field = "FirstAmount"
	FirstMonthFreeFlag        Field = "FirstMonthFreeFlag"
	FirstTax                  Field = "FirstTax"
	HolderName                Field = "HolderName"
	HTTPAccept                Field = "HttpAccept"
	HTTPUserAgent             Field = "HttpUserAgent"
	ItemCode                  Field = "ItemCode"
	JobCd                     Field = "JobCd"
	LastMonthFreeFlag         Field = "LastMonthFreeFlag"
	MailAddress               Field = "MailAddress"
	MemberID                  Field = "MemberID"
	MemberName                Field = "MemberName"
	Method                    Field = "Method"
	OrderID                   Field = "OrderID"
	PayTimes                  Field = "PayTimes"
	PayType                   Field = "PayType"
	PaymentTermDay            Field = "PaymentTermDay"
	PaymentTermSec            Field = "PaymentTermSec"
	PrintStr                  Field = "PrintStr"
	ProductName               Field = "ProductName"
	ReceiptsDisp11            Field = "ReceiptsDisp11"
	ReceiptsDisp12            Field = "ReceiptsDisp12"
	ReceiptsDisp13            Field = "ReceiptsDisp13"
	RecurringID               Field = "RecurringID"
	RegistType                Field = "RegistType"
	RetURL                    Field = "RetURL"
	SecurityCode              Field = "SecurityCode"
	SeqMode                   Field = "SeqMode"
	ServiceName               Field = "ServiceName"
	ServiceTel                Field = "ServiceTel"
	SrcOrderID                Field = "SrcOrderID"
	Tax                       Field = "Tax"
	TdFlag                    Field = "TdFlag"
	TdTenantName              Field = "TdTenantName"
	TelNo                     Field = "TelNo"
	Token                     Field = "Token"
	TokenSeq                  Field = "TokenSeq"
	TokenType                 Field = "TokenType"
	TradeClientMailaddress    Field = "TradeClientMailaddress"
	TradeClientName           Field = "TradeClientName"
	TradeDays                 Field = "TradeDays"
	TradeReason               Field = "TradeReason"
)

// Remittance API fields use underscored names.
const (
	RemitAccountName            Field = "Account_Name"
	RemitAccountNumber          Field = "Account_Number"
	RemitAccountType            Field = "Account_Type"
	RemitAmount                 Field = "Amount"
	RemitBankCode               Field = "Bank_Code"
	RemitBankID                 Field = "Bank_ID"
	RemitBranchCode             Field = "Branch_Code"
	RemitDepositID              Field = "Deposit_ID"
	RemitExpire                 Field = "Expire"
	RemitMailAddress            Field = "Mail_Address"
	RemitMailDepositAccountName Field = "Mail_Deposit_Account_Name"
	RemitMethod                 Field = "Method"
	RemitShopMailAddress        Field = "Shop_Mail_Address"
)

// Response-only fields.
const (
	ErrCode Field = "ErrCode"
	ErrInfo Field = "ErrInfo"
)

var shopAliases = map[string]Field{
	"access_id":                    AccessID,
	"access_pass":                  AccessPass,
	"account_holder_optional_name": AccountHolderOptionalName,
	"account_timing":               AccountTiming,
	"account_timing_kbn":           AccountTimingKbn,
	"amount":                       Amount,
	"cancel_amount":                CancelAmount,
	"cancel_tax":                   CancelTax,
	"card_name":                    CardName,
	"card_no":                      CardNo,
	"card_pass":                    CardPass,
	"card_seq":                     CardSeq,
	"charge_date":                  ChargeDate,
	"charge_day":                   ChargeDay,
	"charge_month":                 ChargeMonth,
	"charge_start_date":            ChargeStartDate,
	"charge_stop_date":             ChargeStopDate,
	"client_field_1":               ClientField1,
	"client_field_2":               ClientField2,
	"client_field_3":               ClientField3,
	"client_field_flg":             ClientFieldFlag,
	"commodity":                    Commodity,
	"confirm_base_date":            ConfirmBaseDate,
	"convenience":                  Convenience,
	"create_member":                CreateMember,
	"customer_kana":                CustomerKana,
	"customer_name":                CustomerName,
	"date_from":                    DateFrom,
	"date_to":                      DateTo,
	"default_flag":                 DefaultFlag,
	"device_category":              DeviceCategory,
	"disp_mail_address":            DispMailAddress,
	"disp_phone_number":            DispPhoneNumber,
	"disp_shop_name":               DispShopName,
	"disp_shop_url":                DispShopURL,
	"docomo_disp_1":                DocomoDisp1,
	"docomo_disp_2":                DocomoDisp2,
	"error_rcv_url":                ErrorRcvURL,
	"expire":                       Expire,
	"first_account_date":           FirstAccountDate,
	"first_amount":                 FirstAmount,
	"first_month_free_flag":        FirstMonthFreeFlag,
	"first_month_free_flg":         FirstMonthFreeFlag,
	"first_tax":                    FirstTax,
	"holder_name":                  HolderName,
	"http_accept":                  HTTPAccept,
	"http_ua":                      HTTPUserAgent,
	"item_code":                    ItemCode,
	"job_cd":                       JobCd,
	"last_month_free_flag":         LastMonthFreeFlag,
	"last_month_free_flg":          LastMonthFreeFlag,
	"mail_address":                 MailAddress,
	"member_id":                    MemberID,
	"member_name":                  MemberName,
	"method":                       Method,
	"order_id":                     OrderID,
	"pay_times":                    PayTimes,
	"pay_type":                     PayType,
	"payment_term_day":             PaymentTermDay,
	"payment_term_sec":             PaymentTermSec,
	"print_str":                    PrintStr,
	"product_name":                 ProductName,
	"receipts_disp_11":             ReceiptsDisp11,
	"receipts_disp_12":             ReceiptsDisp12,
	"receipts_disp_13":             ReceiptsDisp13,
	"recurring_id":                 RecurringID,
	"regist_type":                  RegistType,
	"ret_url":                      RetURL,
	"security_code":                SecurityCode,
	"seq_mode":                     SeqMode,
	"service_name":                 ServiceName,
	"service_tel":                  ServiceTel,
	"shop_id":                      ShopID,
	"shop_pass":                    ShopPass,
	"site_id":                      SiteID,
	"site_pass":                    SitePass,
	"src_order_id":                 SrcOrderID,
	"tax":                          Tax,
	"td_flag":                      TdFlag,
	"td_tenant_name":               TdTenantName,
	"tel_no":                       TelNo,
	"token":                        Token,
	"token_seq":                    TokenSeq,
	"token_type":                   TokenType,
	"trade_client_mailaddress":     TradeClientMailaddress,
	"trade_client_name":            TradeClientName,
	"trade_days":                   TradeDays,
	"trade_reason":                 TradeReason,
}

var remittanceAliases = map[string]Field{
	"account_name":              RemitAccountName,
	"account_number":            RemitAccountNumber,
	"account_type":              RemitAccountType,
	"amount":                    RemitAmount,
	"bank_code":                 RemitBankCode,
	"bank_id":                   RemitBankID,
	"branch_code":               RemitBranchCode,
	"deposit_id":                RemitDepositID,
	"expire":                    RemitExpire,
	"mail_address":              RemitMailAddress,
	"mail_deposit_account_name": RemitMailDepositAccountName,
	"method":                    RemitMethod,
	"shop_id":                   ShopID,
	"shop_pass":                 ShopPass,
	"shop_mail_address":         RemitShopMailAddress,
}
