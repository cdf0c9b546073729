package payment

import "context"

// BankClient calls the GMO Aozora Net Bank (GANB) virtual account API.
type BankClient struct {
	*api
}

func NewBankClient(cfg Config, opts ...Option) (*BankClient, error) {
	a, err := newAPI(FamilyBank, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &BankClient{api: a}, nil
}

// EntryTranGANB registers a bank transfer transaction.
func (c *BankClient) EntryTranGANB(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "EntryTranGANB", p)
}

// ExecTranGANB issues the virtual account for a registered transaction.
func (c *BankClient) ExecTranGANB(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "ExecTranGANB", p)
}

func (c *BankClient) CancelTranGANB(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "CancelTranGANB", p)
}

// InquiryTransferGANB returns the transfers received on the virtual account.
func (c *BankClient) InquiryTransferGANB(ctx context.Context, p Params) ([]TransferRecord, error) {
	res, err := c.Call(ctx, "InquiryTransferGANB", p)
	if err != nil {
		return nil, err
	}
	return res.Transfers, nil
}

// SearchTradeMulti looks up a bank transfer transaction. PayType is always
// sent as 36.
func (c *BankClient) SearchTradeMulti(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "SearchTradeMulti", p)
}
