package payment

func init() {
	register(FamilyShop,
		operation("EntryTran", OrderID, JobCd).with(func(p Params) []Field {
			if p.Has(JobCd) && p[JobCd] != "CHECK" {
				return []Field{Amount}
			}
			return nil
		}),
		operation("EntryTranCvs", OrderID, Amount),
		operation("EntryTranPayEasy", OrderID, Amount),
		operation("EntryTranLinepay", OrderID, JobCd, Amount),
		operation("EntryTranAu", OrderID, JobCd, Amount),
		operation("EntryTranDocomo", OrderID, JobCd, Amount),
		operation("EntryTranSb", OrderID, JobCd, Amount),
		operation("EntryTranBrandtoken", OrderID, JobCd, Amount),

		operation("ExecTran", AccessID, AccessPass).with(func(p Params) []Field {
			setClientFieldFlag(p)
			if p.Has(Token) {
				return []Field{Token}
			}
			return []Field{OrderID, CardNo, Expire}
		}),
		operation("ExecTranCvs", AccessID, AccessPass, OrderID, Convenience, CustomerName, CustomerKana,
			TelNo, ReceiptsDisp11, ReceiptsDisp12, ReceiptsDisp13),
		operation("ExecTranPayEasy", AccessID, AccessPass, OrderID, CustomerName, CustomerKana,
			TelNo, ReceiptsDisp11, ReceiptsDisp12, ReceiptsDisp13),
		operation("ExecTranLinepay", AccessID, AccessPass, OrderID, RetURL, ErrorRcvURL, ProductName),
		operation("ExecTranAu", AccessID, AccessPass, OrderID, Commodity, RetURL, ServiceName, ServiceTel),
		operation("ExecTranDocomo", AccessID, AccessPass, OrderID, RetURL),
		operation("ExecTranSb", AccessID, AccessPass, OrderID, RetURL),
		operation("ExecTranBrandtoken", AccessID, AccessPass, OrderID).with(mapTokenType),

		operation("AlterTran", AccessID, AccessPass, JobCd),
		operation("AuSales", AccessID, AccessPass, OrderID, Amount),
		operation("SbSales", AccessID, AccessPass, OrderID, Amount),
		operation("DocomoSales", AccessID, AccessPass, OrderID, Amount),
		operation("ChangeTran", AccessID, AccessPass, JobCd, Amount),
		operation("ChangeTranBrandtoken", AccessID, AccessPass, OrderID, JobCd, Amount),
		operation("VoidTranBrandtoken", AccessID, AccessPass, OrderID),
		operation("SalesTranBrandtoken", AccessID, AccessPass, OrderID, Amount),
		operation("RefundTranBrandtoken", AccessID, AccessPass, OrderID, Amount),
		operation("SearchTrade", OrderID),
		operation("SearchTradeMulti", OrderID, PayType),

		operation("RegisterRecurringCredit", RecurringID, Amount, ChargeDay).with(func(p Params) []Field {
			if p.Has(SrcOrderID) {
				p[RegistType] = "3"
				return nil
			}
			p[RegistType] = "2"
			return []Field{CardNo, Expire}
		}),
		operation("RegisterRecurringAccounttrans", RecurringID, Amount, PrintStr),
		operation("UnregisterRecurring", RecurringID),
		operation("ChangeRecurring", RecurringID, Amount),
		operation("SearchRecurring", RecurringID),
		operation("SearchRecurringResult", RecurringID),
		operation("SearchRecurringResultFile", Method, ChargeDate).returns(bodyCSV),

		operation("CvsCancel", AccessID, AccessPass, OrderID),
		operation("PayEasyCancel", AccessID, AccessPass, OrderID),
		operation("AuCancelReturn", AccessID, AccessPass, OrderID, CancelAmount),
		operation("SbCancel", AccessID, AccessPass, OrderID, CancelAmount),
		operation("DocomoCancelReturn", AccessID, AccessPass, OrderID, CancelAmount),

		operation("EntryTranAuContinuance", OrderID, Amount, FirstAmount),
		operation("EntryTranSbContinuance", OrderID, Amount),
		operation("EntryTranDocomoContinuance", OrderID, Amount),
		operation("ExecTranAuContinuance", AccessID, AccessPass, OrderID, Commodity, RetURL, ServiceName,
			ServiceTel).with(func(p Params) []Field {
			if p.Has(SiteID) {
				return []Field{SitePass, MemberID, CreateMember}
			}
			return nil
		}),
		operation("ExecTranSbContinuance", AccessID, AccessPass, OrderID, RetURL, ChargeDay, FirstMonthFreeFlag),
		operation("ExecTranDocomoContinuance", AccessID, AccessPass, OrderID, RetURL, FirstMonthFreeFlag,
			ConfirmBaseDate),
		operation("AuContinuanceStart", AccessID, Token),
		operation("DocomoContinuanceStart", AccessID, Token),
		operation("SbContinuanceStart", AccessID, Token),
		operation("AuContinuanceCancel", AccessID, AccessPass, OrderID),
		operation("SbContinuanceCancel", AccessID, AccessPass, OrderID),
		operation("DocomoContinuanceUserEnd", AccessID, AccessPass, OrderID, Amount, RetURL, LastMonthFreeFlag),
		operation("DocomoContinuanceShopEnd", AccessID, AccessPass, OrderID, Amount, LastMonthFreeFlag),

		operation("ExecFraudScreening", AccessID, AccessPass, OrderID),
	)

	register(FamilyBank,
		operation("EntryTranGANB", OrderID, Amount),
		operation("ExecTranGANB", AccessID, AccessPass, OrderID),
		operation("CancelTranGANB", AccessID, AccessPass, OrderID),
		operation("InquiryTransferGANB", AccessID, AccessPass, OrderID).returns(bodyTransferRecords),
		operation("SearchTradeMulti", OrderID).with(func(p Params) []Field {
			p[PayType] = PayTypeGANB
			return nil
		}),
	)

	register(FamilySite,
		operation("SaveMember", MemberID),
		operation("UpdateMember", MemberID),
		operation("DeleteMember", MemberID),
		operation("SearchMember", MemberID),
		operation("SaveCard", MemberID).with(func(p Params) []Field {
			if p.Has(Token) {
				return nil
			}
			return []Field{CardNo, Expire}
		}),
		operation("DeleteCard", MemberID, CardSeq),
		operation("SearchCard", MemberID, SeqMode),
		operation("SearchBrandtoken", MemberID),
		operation("DeleteBrandtoken", MemberID, TokenSeq),
	)

	register(FamilySiteAndShop,
		operation("ExecTran", AccessID, AccessPass, OrderID, MemberID).with(func(p Params) []Field {
			setClientFieldFlag(p)
			if !p.Has(SeqMode) {
				p[SeqMode] = "0"
			}
			return nil
		}),
		operation("TradedCard", OrderID, MemberID),
		operation("ExecTranBrandtoken", AccessID, AccessPass, OrderID, MemberID).with(mapTokenType),
		operation("TradedBrandtoken", OrderID, MemberID),
	)

	register(FamilyRemittance,
		operation("AccountRegistration", RemitMethod, RemitBankID).with(func(p Params) []Field {
			if p[RemitMethod] == RemitMethodRegister {
				return []Field{RemitBankCode, RemitBranchCode, RemitAccountType, RemitAccountName, RemitAccountNumber}
			}
			return nil
		}),
		operation("AccountSearch", RemitBankID),
		operation("DepositRegistration", RemitMethod, RemitDepositID).with(func(p Params) []Field {
			if p[RemitMethod] == RemitMethodRegister {
				return []Field{RemitBankID, RemitAmount}
			}
			return nil
		}),
		operation("DepositSearch", RemitDepositID),
		operation("MailDepositRegistration", RemitMethod, RemitDepositID).with(func(p Params) []Field {
			if p[RemitMethod] == RemitMethodRegister {
				return []Field{RemitMailAddress, RemitAmount, RemitMailDepositAccountName, RemitExpire,
					RemitShopMailAddress}
			}
			return nil
		}),
		operation("MailDepositSearch", RemitDepositID),
		operation("BalanceSearch"),
	)
}

const (
	// PayTypeGANB is the PayType of GMO Aozora Net Bank transfers.
	PayTypeGANB = "36"

	// RemitMethodRegister is the Method value that creates a record; other
	// values update or cancel one.
	RemitMethodRegister = "1"
)

func mapTokenType(p Params) []Field {
	if mapped, ok := tokenTypes[p[TokenType]]; ok {
		p[TokenType] = mapped
	}
	return nil
}
