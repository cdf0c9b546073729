package payment

import "context"

// ShopClient calls the shop API, authenticated with ShopID and ShopPass.
type ShopClient struct {
	*api
}

func NewShopClient(cfg Config, opts ...Option) (*ShopClient, error) {
	a, err := newAPI(FamilyShop, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &ShopClient{api: a}, nil
}

// EntryTran registers a card transaction and returns AccessID and AccessPass.
// Amount is required unless JobCd is CHECK.
func (c *ShopClient) EntryTran(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTran", p)
}

func (c *ShopClient) EntryTranCvs(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranCvs", p)
}

func (c *ShopClient) EntryTranPayEasy(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranPayEasy", p)
}

func (c *ShopClient) EntryTranLinepay(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranLinepay", p)
}

func (c *ShopClient) EntryTranAu(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranAu", p)
}

func (c *ShopClient) EntryTranDocomo(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranDocomo", p)
}

func (c *ShopClient) EntryTranSb(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranSb", p)
}

func (c *ShopClient) EntryTranBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranBrandtoken", p)
}

// ExecTran settles a card transaction, either with a card token or with
// CardNo and Expire.
func (c *ShopClient) ExecTran(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTran", p)
}

func (c *ShopClient) ExecTranCvs(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranCvs", p)
}

func (c *ShopClient) ExecTranPayEasy(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranPayEasy", p)
}

func (c *ShopClient) ExecTranLinepay(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranLinepay", p)
}

func (c *ShopClient) ExecTranAu(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranAu", p)
}

func (c *ShopClient) ExecTranDocomo(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranDocomo", p)
}

func (c *ShopClient) ExecTranSb(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranSb", p)
}

// ExecTranBrandtoken accepts TokenType apple_pay or google_pay as well as the
// gateway's own APay and GPay values.
func (c *ShopClient) ExecTranBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranBrandtoken", p)
}

func (c *ShopClient) AlterTran(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "AlterTran", p)
}

func (c *ShopClient) AuSales(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "AuSales", p)
}

func (c *ShopClient) SbSales(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SbSales", p)
}

func (c *ShopClient) DocomoSales(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DocomoSales", p)
}

func (c *ShopClient) ChangeTran(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ChangeTran", p)
}

func (c *ShopClient) ChangeTranBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ChangeTranBrandtoken", p)
}

func (c *ShopClient) VoidTranBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "VoidTranBrandtoken", p)
}

func (c *ShopClient) SalesTranBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SalesTranBrandtoken", p)
}

func (c *ShopClient) RefundTranBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "RefundTranBrandtoken", p)
}

func (c *ShopClient) SearchTrade(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchTrade", p)
}

func (c *ShopClient) SearchTradeMulti(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchTradeMulti", p)
}

// RegisterRecurringCredit registers a recurring card charge. With SrcOrderID
// the card of an earlier transaction is reused; otherwise CardNo and Expire
// are required.
func (c *ShopClient) RegisterRecurringCredit(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "RegisterRecurringCredit", p)
}

func (c *ShopClient) RegisterRecurringAccounttrans(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "RegisterRecurringAccounttrans", p)
}

func (c *ShopClient) UnregisterRecurring(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "UnregisterRecurring", p)
}

func (c *ShopClient) ChangeRecurring(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ChangeRecurring", p)
}

func (c *ShopClient) SearchRecurring(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchRecurring", p)
}

func (c *ShopClient) SearchRecurringResult(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchRecurringResult", p)
}

// SearchRecurringResultFile downloads the charge result file as CSV rows.
func (c *ShopClient) SearchRecurringResultFile(ctx context.Context, p Params) ([][]string, error) {
	res, err := c.Call(ctx, "SearchRecurringResultFile", p)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

func (c *ShopClient) CvsCancel(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "CvsCancel", p)
}

func (c *ShopClient) PayEasyCancel(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "PayEasyCancel", p)
}

func (c *ShopClient) AuCancelReturn(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "AuCancelReturn", p)
}

func (c *ShopClient) SbCancel(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SbCancel", p)
}

func (c *ShopClient) DocomoCancelReturn(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DocomoCancelReturn", p)
}

func (c *ShopClient) EntryTranAuContinuance(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranAuContinuance", p)
}

func (c *ShopClient) EntryTranSbContinuance(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranSbContinuance", p)
}

func (c *ShopClient) EntryTranDocomoContinuance(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranDocomoContinuance", p)
}

// ExecTranAuContinuance also registers the au member when SiteID is given,
// in which case SitePass, MemberID and CreateMember become required.
func (c *ShopClient) ExecTranAuContinuance(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranAuContinuance", p)
}

func (c *ShopClient) ExecTranSbContinuance(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranSbContinuance", p)
}

func (c *ShopClient) ExecTranDocomoContinuance(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranDocomoContinuance", p)
}

func (c *ShopClient) AuContinuanceStart(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "AuContinuanceStart", p)
}

func (c *ShopClient) DocomoContinuanceStart(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DocomoContinuanceStart", p)
}

func (c *ShopClient) SbContinuanceStart(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SbContinuanceStart", p)
}

func (c *ShopClient) AuContinuanceCancel(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "AuContinuanceCancel", p)
}

func (c *ShopClient) SbContinuanceCancel(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SbContinuanceCancel", p)
}

func (c *ShopClient) DocomoContinuanceUserEnd(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DocomoContinuanceUserEnd", p)
}

func (c *ShopClient) DocomoContinuanceShopEnd(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DocomoContinuanceShopEnd", p)
}

func (c *ShopClient) ExecFraudScreening(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecFraudScreening", p)
}
