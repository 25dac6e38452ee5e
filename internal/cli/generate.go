package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zlobste/ip6pool/addrset"
	"github.com/zlobste/ip6pool/internal/export"
)

type generateOptions struct {
	count   int
	version string
	prefix  string
	save    string
	format  string
}

func (a *app) generateCmd() *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate random IPv6 addresses inside a prefix, or random IPv4 addresses",
		Example: "  ip6pool generate -n 10 --prefix 2001:db8::/64\n  ip6pool generate -n 5 --version v4 --save pool.json --format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := a.generate(o)
			if err != nil {
				return err
			}
			addrs := set.Strings()
			if o.save != "" {
				if err := a.save(cmd, o.save, o.format, addrs); err != nil {
					return err
				}
			}
			return a.render(cmd.OutOrStdout(), addrs)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&o.count, "count", "n", 0, "number of addresses to generate")
	flags.StringVar(&o.version, "version", "v6", "address family: v4|v6")
	flags.StringVarP(&o.prefix, "prefix", "p", "", "IPv6 prefix between /16 and /64 (defaults to default_prefix from config)")
	flags.StringVarP(&o.save, "save", "s", "", "also save the addresses to this file")
	flags.StringVarP(&o.format, "format", "f", "", "file format: text|json|csv|yaml (defaults to format from config)")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

func (a *app) generate(o *generateOptions) (*addrset.Set, error) {
	switch strings.ToLower(o.version) {
	case "v4", "4", "ipv4":
		return a.svc.GenerateIPv4(o.count)
	case "v6", "6", "ipv6":
		text := o.prefix
		if text == "" {
			text = a.cfg.DefaultPrefix
		}
		if text == "" {
			return nil, invalid(a.logger, errors.New("--prefix is required for v6"), "version", o.version)
		}
		p, err := a.svc.ValidatePrefix(text)
		if err != nil {
			return nil, err
		}
		return a.svc.GenerateIPv6(p, o.count)
	default:
		return nil, invalid(a.logger, fmt.Errorf("unknown address version %q, want v4 or v6", o.version), "version", o.version)
	}
}

func (a *app) save(cmd *cobra.Command, path, format string, addrs []string) error {
	if format == "" {
		format = a.cfg.Format
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return invalid(a.logger, err, "format", format, "file", path)
	}
	if err := a.svc.Save(path, addrs, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d addresses to %s (%s)\n", len(addrs), path, f)
	return nil
}
