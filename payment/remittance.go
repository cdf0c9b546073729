package payment

import "context"

// RemittanceClient calls the remittance API under /api/. Its field names use
// underscores (Bank_ID, Deposit_ID, ...); see the Remit* fields.
type RemittanceClient struct {
	*api
}

func NewRemittanceClient(cfg Config, opts ...Option) (*RemittanceClient, error) {
	a, err := newAPI(FamilyRemittance, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &RemittanceClient{api: a}, nil
}

// AccountRegistration registers (Method 1), updates or deletes a payee bank
// account. Registration requires the full account details.
func (c *RemittanceClient) AccountRegistration(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "AccountRegistration", p)
}

func (c *RemittanceClient) AccountSearch(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "AccountSearch", p)
}

// DepositRegistration requests (Method 1) or cancels a remittance.
func (c *RemittanceClient) DepositRegistration(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DepositRegistration", p)
}

func (c *RemittanceClient) DepositSearch(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "DepositSearch", p)
}

func (c *RemittanceClient) MailDepositRegistration(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "MailDepositRegistration", p)
}

func (c *RemittanceClient) MailDepositSearch(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "MailDepositSearch", p)
}

func (c *RemittanceClient) BalanceSearch(ctx context.Context, p Params) (Response, error) {
	return c.call(ctx, "BalanceSearch", p)
}
