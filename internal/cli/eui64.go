package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func (a *app) eui64Cmd() *cobra.Command {
	var mac, prefix, save, format string

	cmd := &cobra.Command{
		Use:     "eui64",
		Short:   "Derive the modified EUI-64 IPv6 address of a MAC address inside a prefix",
		Example: "  ip6pool eui64 --mac 00:1A:2B:3C:4D:5E --prefix 2001:db8::/64",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if prefix == "" {
				prefix = a.cfg.DefaultPrefix
			}
			if prefix == "" {
				return invalid(a.logger, errors.New("--prefix is required"), "mac", mac)
			}
			p, err := a.svc.ValidatePrefix(prefix)
			if err != nil {
				return err
			}
			addr, err := a.svc.DeriveEUI64(p, mac)
			if err != nil {
				return err
			}
			if save != "" {
				if err := a.save(cmd, save, format, []string{addr.String()}); err != nil {
					return err
				}
			}
			return a.render(cmd.OutOrStdout(), addr.String())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&mac, "mac", "m", "", "MAC address, e.g. 00:1A:2B:3C:4D:5E")
	flags.StringVarP(&prefix, "prefix", "p", "", "IPv6 prefix between /16 and /64 (defaults to default_prefix from config)")
	flags.StringVarP(&save, "save", "s", "", "also save the address to this file")
	flags.StringVarP(&format, "format", "f", "", "file format: text|json|csv|yaml (defaults to format from config)")
	_ = cmd.MarkFlagRequired("mac")

	return cmd
}
