package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <IPv6 prefix>",
		Short: "Validate a prefix and show its network details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.svc.ValidatePrefix(args[0])
			if err != nil {
				return err
			}
			out := map[string]any{
				"network":       p.Network().String(),
				"prefix_length": p.Bits(),
				"host_bits":     p.HostBits(),
				"first_host":    p.First().String(),
				"last_host":     p.Last().String(),
				"host_count":    p.HostCount().String(),
			}
			return a.render(cmd.OutOrStdout(), out)
		},
	}
}
