// Package payment is a client for the GMO Payment Gateway protocol API.
//
// Every remote operation is a form POST to /payment/<Name>.idPass (or
// /api/<Name>.idPass for remittance) answered with a flat
// "Key=Value&Key=Value" body in Shift_JIS, where multi-value fields are joined
// with "|". Clients are split by credential family:
//
//	shop, _ := payment.NewShopClient(payment.Config{Host: "pt01.mul-pay.jp", ShopID: id, ShopPass: pass})
//	res, err := shop.EntryTran(ctx, payment.Params{}.
//		Set(payment.OrderID, orderID).
//		Set(payment.JobCd, "AUTH").
//		Set(payment.Amount, 1000))
//
// Gateway errors come back as *APIError and unwrap to ErrPayment.
package payment
