package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gmopay/internal/config"
	"gmopay/internal/logger"
	"gmopay/internal/utils"
	"gmopay/payment"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	if err := run(ctx, os.Args[1:], os.Stdout, config.LoadConfig); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.L().Error("gmopay failed", zap.Error(err))
		log.Fatal(err)
	}
}

type caller interface {
	Call(ctx context.Context, name string, p payment.Params) (*payment.Result, error)
	Stats() payment.Stats
}

func run(ctx context.Context, args []string, stdout io.Writer, load func() (*config.Config, error), opts ...payment.Option) error {
	fs := flag.NewFlagSet("gmopay", flag.ContinueOnError)
	api := fs.String("api", "shop", "api family: shop, bank, site, site_and_shop or remittance")
	opName := fs.String("op", "", "operation to call, e.g. EntryTran")
	list := fs.Bool("list", false, "print the operations of the api family and exit")
	orderID := fs.Bool("order-id", false, "generate an OrderID when none is given")
	if err := fs.Parse(args); err != nil {
		return err
	}

	family, err := payment.ParseFamily(*api)
	if err != nil {
		return err
	}
	if *list {
		return printCatalogue(stdout, family)
	}
	if *opName == "" {
		return errors.New("-op is required (see -list)")
	}

	params, err := payment.ParseParams(family, fs.Args())
	if err != nil {
		return err
	}
	if *orderID && !params.Has(payment.OrderID) {
		params.Set(payment.OrderID, utils.GenerateOrderID())
	}

	cfg, err := load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, payment.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst))
	}

	client, err := newClient(family, payment.Config{
		Host:     cfg.Host,
		ShopID:   cfg.ShopID,
		ShopPass: cfg.ShopPass,
		SiteID:   cfg.SiteID,
		SitePass: cfg.SitePass,
		Locale:   cfg.Locale,
		Timeout:  cfg.Timeout,
	}, opts...)
	if err != nil {
		return err
	}

	res, err := client.Call(ctx, *opName, params)
	stats := client.Stats()
	logger.FromCtx(ctx).Debug("gateway stats",
		zap.Uint64("calls", stats.Calls),
		zap.Uint64("succeeded", stats.Succeeded),
		zap.Duration("elapsed", stats.Elapsed),
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func newClient(family payment.Family, cfg payment.Config, opts ...payment.Option) (caller, error) {
	var (
		c   caller
		err error
	)
	switch family {
	case payment.FamilyBank:
		c, err = payment.NewBankClient(cfg, opts...)
	case payment.FamilySite:
		c, err = payment.NewSiteClient(cfg, opts...)
	case payment.FamilySiteAndShop:
		c, err = payment.NewSiteAndShopClient(cfg, opts...)
	case payment.FamilyRemittance:
		c, err = payment.NewRemittanceClient(cfg, opts...)
	default:
		c, err = payment.NewShopClient(cfg, opts...)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func printCatalogue(w io.Writer, family payment.Family) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, op := range payment.Operations(family) {
		required := make([]string, len(op.Required))
		for i, f := range op.Required {
			required[i] = string(f)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", op.Name, op.Path(), strings.Join(required, ", "))
	}
	return tw.Flush()
}
