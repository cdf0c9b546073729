package payment

import "context"

// SiteClient manages members and their stored cards, authenticated with
// SiteID and SitePass.
type SiteClient struct {
	*api
}

func NewSiteClient(cfg Config, opts ...Option) (*SiteClient, error) {
	a, err := newAPI(FamilySite, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &SiteClient{api: a}, nil
}

func (c *SiteClient) SaveMember(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SaveMember", p)
}

func (c *SiteClient) UpdateMember(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "UpdateMember", p)
}

func (c *SiteClient) DeleteMember(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DeleteMember", p)
}

func (c *SiteClient) SearchMember(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchMember", p)
}

// SaveCard stores a card for a member from a token, or from CardNo and Expire.
func (c *SiteClient) SaveCard(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SaveCard", p)
}

func (c *SiteClient) DeleteCard(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DeleteCard", p)
}

// SearchCard returns the member's cards; CardSeq, CardNo and Expire are
// "|"-joined lists, see Response.Rows.
func (c *SiteClient) SearchCard(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchCard", p)
}

func (c *SiteClient) SearchBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchBrandtoken", p)
}

func (c *SiteClient) DeleteBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DeleteBrandtoken", p)
}

// SiteAndShopClient settles transactions against stored members. It sends
// both site and shop credentials.
type SiteAndShopClient struct {
	*api
}

func NewSiteAndShopClient(cfg Config, opts ...Option) (*SiteAndShopClient, error) {
	a, err := newAPI(FamilySiteAndShop, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &SiteAndShopClient{api: a}, nil
}

// ExecTran settles with a stored card. SeqMode defaults to 0 (logical
// sequence).
func (c *SiteAndShopClient) ExecTran(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTran", p)
}

// TradedCard stores the card of a finished transaction for a member.
func (c *SiteAndShopClient) TradedCard(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "TradedCard", p)
}

func (c *SiteAndShopClient) ExecTranBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranBrandtoken", p)
}

func (c *SiteAndShopClient) TradedBrandtoken(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "TradedBrandtoken", p)
}
