package payment

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	op, err := Lookup(FamilyShop, "EntryTran")
	require.NoError(t, err)
	assert.Equal(t, "/payment/EntryTran.idPass", op.Path())

	op, err = Lookup(FamilyShop, "EntryTran.idPass")
	require.NoError(t, err)
	assert.Equal(t, "EntryTran", op.Name)

	op, err = Lookup(FamilyRemittance, "DepositRegistration")
	require.NoError(t, err)
	assert.Equal(t, "/api/DepositRegistration.idPass", op.Path())

	_, err = Lookup(FamilyBank, "EntryTran")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestOperations_Catalogue(t *testing.T) {
	counts := map[Family]int{
		FamilyShop:        58,
		FamilyBank:        5,
		FamilySite:        9,
		FamilySiteAndShop: 4,
		FamilyRemittance:  7,
	}
	for family, n := range counts {
		ops := Operations(family)
		assert.Len(t, ops, n, family)
		for i := 1; i < len(ops); i++ {
			assert.Less(t, ops[i-1].Name, ops[i].Name)
		}
	}
}

// Every exported method of a client, other than the shared ones, must be a
// registered operation of the client's family.
func TestClientMethodsMatchCatalogue(t *testing.T) {
	shared := map[string]bool{"Call": true, "Host": true, "Locale": true, "Stats": true}
	clients := map[Family]reflect.Type{
		FamilyShop:        reflect.TypeOf(&ShopClient{}),
		FamilyBank:        reflect.TypeOf(&BankClient{}),
		FamilySite:        reflect.TypeOf(&SiteClient{}),
		FamilySiteAndShop: reflect.TypeOf(&SiteAndShopClient{}),
		FamilyRemittance:  reflect.TypeOf(&RemittanceClient{}),
	}

	for family, typ := range clients {
		methods := 0
		for i := 0; i < typ.NumMethod(); i++ {
			name := typ.Method(i).Name
			if shared[name] {
				continue
			}
			methods++
			_, err := Lookup(family, name)
			assert.NoError(t, err, "%s.%s", family, name)
		}
		assert.Equal(t, len(Operations(family)), methods, family)
	}
}

func build(t *testing.T, family Family, name string, p Params) (Params, error) {
	t.Helper()
	op, err := Lookup(family, name)
	require.NoError(t, err)
	return op.build(p)
}

func missingFields(t *testing.T, err error) []Field {
	t.Helper()
	var missing *MissingParamsError
	require.True(t, errors.As(err, &missing), "expected MissingParamsError, got %v", err)
	return missing.Fields
}

func TestBuild_DoesNotModifyInput(t *testing.T) {
	in := Params{AccessID: "a", AccessPass: "b", Token: "tok"}
	out, err := build(t, FamilyShop, "ExecTran", in)
	require.NoError(t, err)

	assert.Equal(t, "0", out[ClientFieldFlag])
	assert.NotContains(t, in, ClientFieldFlag)
}

func TestEntryTran_AmountRule(t *testing.T) {
	_, err := build(t, FamilyShop, "EntryTran", Params{OrderID: "1", JobCd: "AUTH"})
	assert.Equal(t, []Field{Amount}, missingFields(t, err))

	_, err = build(t, FamilyShop, "EntryTran", Params{OrderID: "1", JobCd: "CHECK"})
	assert.NoError(t, err)

	_, err = build(t, FamilyShop, "EntryTran", Params{})
	assert.Equal(t, []Field{OrderID, JobCd}, missingFields(t, err))
}

func TestExecTran_Rules(t *testing.T) {
	t.Run("card number", func(t *testing.T) {
		_, err := build(t, FamilyShop, "ExecTran", Params{AccessID: "a", AccessPass: "b"})
		assert.Equal(t, []Field{OrderID, CardNo, Expire}, missingFields(t, err))
	})

	t.Run("token", func(t *testing.T) {
		p, err := build(t, FamilyShop, "ExecTran", Params{AccessID: "a", AccessPass: "b", Token: "tok"})
		require.NoError(t, err)
		assert.Equal(t, "0", p[DeviceCategory])
		assert.Equal(t, "0", p[ClientFieldFlag])
	})

	t.Run("client field flag", func(t *testing.T) {
		p, err := build(t, FamilyShop, "ExecTran", Params{
			AccessID: "a", AccessPass: "b", OrderID: "1", CardNo: "4111111111111111", Expire: "2512",
			ClientField2: "memo",
		})
		require.NoError(t, err)
		assert.Equal(t, "1", p[ClientFieldFlag])
	})

	t.Run("member", func(t *testing.T) {
		p, err := build(t, FamilySiteAndShop, "ExecTran", Params{AccessID: "a", AccessPass: "b", OrderID: "1", MemberID: "m"})
		require.NoError(t, err)
		assert.Equal(t, "0", p[SeqMode])
		assert.Equal(t, "0", p[DeviceCategory])

		p, err = build(t, FamilySiteAndShop, "ExecTran", Params{AccessID: "a", AccessPass: "b", OrderID: "1", MemberID: "m", SeqMode: "1"})
		require.NoError(t, err)
		assert.Equal(t, "1", p[SeqMode])
	})
}

func TestExecTranBrandtoken_TokenType(t *testing.T) {
	base := Params{AccessID: "a", AccessPass: "b", OrderID: "1"}

	for in, want := range map[string]string{"apple_pay": "APay", "google_pay": "GPay", "APay": "APay"} {
		p := base.clone()
		p[TokenType] = in
		out, err := build(t, FamilyShop, "ExecTranBrandtoken", p)
		require.NoError(t, err)
		assert.Equal(t, want, out[TokenType])
	}
}

func TestRegisterRecurringCredit_RegistType(t *testing.T) {
	base := Params{RecurringID: "R1", Amount: "100", ChargeDay: "1"}

	_, err := build(t, FamilyShop, "RegisterRecurringCredit", base)
	assert.Equal(t, []Field{CardNo, Expire}, missingFields(t, err))

	p := base.clone()
	p[CardNo], p[Expire] = "4111111111111111", "2512"
	out, err := build(t, FamilyShop, "RegisterRecurringCredit", p)
	require.NoError(t, err)
	assert.Equal(t, "2", out[RegistType])

	p = base.clone()
	p[SrcOrderID] = "ORD-1"
	out, err = build(t, FamilyShop, "RegisterRecurringCredit", p)
	require.NoError(t, err)
	assert.Equal(t, "3", out[RegistType])
}

func TestExecTranAuContinuance_SiteFields(t *testing.T) {
	base := Params{
		AccessID: "a", AccessPass: "b", OrderID: "1", Commodity: "c", RetURL: "https://x.test",
		ServiceName: "s", ServiceTel: "0300000000",
	}

	_, err := build(t, FamilyShop, "ExecTranAuContinuance", base)
	require.NoError(t, err)

	p := base.clone()
	p[SiteID] = "site"
	_, err = build(t, FamilyShop, "ExecTranAuContinuance", p)
	assert.Equal(t, []Field{SitePass, MemberID, CreateMember}, missingFields(t, err))
}

func TestContinuanceExec_UsesAccessID(t *testing.T) {
	_, err := build(t, FamilyShop, "ExecTranSbContinuance", Params{})
	assert.Equal(t, []Field{AccessID, AccessPass, OrderID, RetURL, ChargeDay, FirstMonthFreeFlag}, missingFields(t, err))

	_, err = build(t, FamilyShop, "ExecTranDocomoContinuance", Params{})
	assert.Equal(t, []Field{AccessID, AccessPass, OrderID, RetURL, FirstMonthFreeFlag, ConfirmBaseDate}, missingFields(t, err))
}

func TestBankSearchTradeMulti_ForcesPayType(t *testing.T) {
	p, err := build(t, FamilyBank, "SearchTradeMulti", Params{OrderID: "1", PayType: "0"})
	require.NoError(t, err)
	assert.Equal(t, "36", p[PayType])

	_, err = build(t, FamilyShop, "SearchTradeMulti", Params{OrderID: "1"})
	assert.Equal(t, []Field{PayType}, missingFields(t, err))
}

func TestSaveCard_Rules(t *testing.T) {
	_, err := build(t, FamilySite, "SaveCard", Params{MemberID: "m"})
	assert.Equal(t, []Field{CardNo, Expire}, missingFields(t, err))

	_, err = build(t, FamilySite, "SaveCard", Params{MemberID: "m", Token: "tok"})
	assert.NoError(t, err)
}

func TestRemittance_MethodRules(t *testing.T) {
	_, err := build(t, FamilyRemittance, "AccountRegistration", Params{RemitMethod: "2", RemitBankID: "b"})
	assert.NoError(t, err)

	_, err = build(t, FamilyRemittance, "AccountRegistration", Params{RemitMethod: "1", RemitBankID: "b"})
	assert.Equal(t, []Field{RemitBankCode, RemitBranchCode, RemitAccountType, RemitAccountName, RemitAccountNumber}, missingFields(t, err))

	_, err = build(t, FamilyRemittance, "DepositRegistration", Params{RemitMethod: "1", RemitDepositID: "d"})
	assert.Equal(t, []Field{RemitBankID, RemitAmount}, missingFields(t, err))

	_, err = build(t, FamilyRemittance, "MailDepositRegistration", Params{RemitMethod: "1", RemitDepositID: "d"})
	assert.Equal(t, []Field{RemitMailAddress, RemitAmount, RemitMailDepositAccountName, RemitExpire, RemitShopMailAddress}, missingFields(t, err))

	_, err = build(t, FamilyRemittance, "BalanceSearch", Params{})
	assert.NoError(t, err)
}

func TestParseFamily(t *testing.T) {
	for _, f := range Families {
		got, err := ParseFamily(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFamily("site-and-shop")
	require.NoError(t, err)
	assert.Equal(t, FamilySiteAndShop, got)

	_, err = ParseFamily("card")
	assert.Error(t, err)
}
