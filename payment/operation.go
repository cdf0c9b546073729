package payment

import (
	"fmt"
	"sort"
	"strings"
)

// Family groups operations that share credentials and an endpoint prefix.
type Family string

const (
	FamilyShop        Family = "shop"
	FamilyBank        Family = "bank"
	FamilySite        Family = "site"
	FamilySiteAndShop Family = "site_and_shop"
	FamilyRemittance  Family = "remittance"
)

// Families lists every family in a stable order.
var Families = []Family{FamilyShop, FamilyBank, FamilySite, FamilySiteAndShop, FamilyRemittance}

// ParseFamily accepts the family names used on the command line.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(s) {
	case "shop":
		return FamilyShop, nil
	case "bank":
		return FamilyBank, nil
	case "site":
		return FamilySite, nil
	case "site_and_shop", "site-and-shop", "siteandshop":
		return FamilySiteAndShop, nil
	case "remittance":
		return FamilyRemittance, nil
	}
	return "", fmt.Errorf("unknown api family %q", s)
}

func (f Family) credentials() []Field {
	switch f {
	case FamilySite:
		return []Field{SiteID, SitePass}
	case FamilySiteAndShop:
		return []Field{SiteID, SitePass, ShopID, ShopPass}
	default:
		return []Field{ShopID, ShopPass}
	}
}

func (f Family) pathPrefix() string {
	if f == FamilyRemittance {
		return "/api/"
	}
	return "/payment/"
}

type bodyFormat int

const (
	bodyKeyValue bodyFormat = iota
	bodyTransferRecords
	bodyCSV
)

// Operation describes one remote call.
type Operation struct {
	Name     string
	Family   Family
	Required []Field

	// prepare may add defaults to p and returns extra required fields.
	prepare func(p Params) []Field
	format  bodyFormat
}

// Path is the endpoint path relative to the gateway host.
func (op *Operation) Path() string {
	return op.Family.pathPrefix() + op.Name + ".idPass"
}

// build applies defaults and checks required fields. The caller's params are
// never modified.
func (op *Operation) build(in Params) (Params, error) {
	p := in.clone()
	required := op.Required
	if op.prepare != nil {
		if extra := op.prepare(p); len(extra) > 0 {
			required = append(append([]Field{}, required...), extra...)
		}
	}
	if missing := p.Missing(required); len(missing) > 0 {
		return nil, &MissingParamsError{Operation: op.Name, Fields: missing}
	}
	return p, nil
}

var registry = map[Family]map[string]*Operation{}

func register(family Family, ops ...*Operation) {
	m, ok := registry[family]
	if !ok {
		m = make(map[string]*Operation, len(ops))
		registry[family] = m
	}
	for _, op := range ops {
		op.Family = family
		if _, dup := m[op.Name]; dup {
			panic(fmt.Sprintf("payment: operation %s registered twice in %s", op.Name, family))
		}
		m[op.Name] = op
	}
}

// Lookup finds an operation by name. The ".idPass" suffix is optional.
func Lookup(family Family, name string) (*Operation, error) {
	name = strings.TrimSuffix(name, ".idPass")
	op, ok := registry[family][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrUnknownOp, name, family)
	}
	return op, nil
}

// Operations returns the catalogue of a family sorted by name.
func Operations(family Family) []*Operation {
	ops := make([]*Operation, 0, len(registry[family]))
	for _, op := range registry[family] {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

func operation(name string, required ...Field) *Operation {
	return &Operation{Name: name, Required: required}
}

func (op *Operation) with(prepare func(Params) []Field) *Operation {
	op.prepare = prepare
	return op
}

func (op *Operation) returns(f bodyFormat) *Operation {
	op.format = f
	return op
}

func anySet(p Params, fields ...Field) bool {
	for _, f := range fields {
		if p.Has(f) {
			return true
		}
	}
	return false
}

// setClientFieldFlag marks whether the merchant free fields should be echoed
// back and pins DeviceCategory to PC.
func setClientFieldFlag(p Params) {
	p.Set(ClientFieldFlag, anySet(p, ClientField1, ClientField2, ClientField3))
	p[DeviceCategory] = "0"
}

var tokenTypes = map[string]string{
	"apple_pay":  "APay",
	"google_pay": "GPay",
}
