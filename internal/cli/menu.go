package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/zlobste/ip6pool/internal/export"
	"github.com/zlobste/ip6pool/internal/service"
)

const menuText = `
ip6pool - Main Menu
1. Generate IPv6/IPv4 Addresses
2. Generate EUI-64 IPv6 Address
3. Save Addresses (text, json, csv, yaml)
4. Exit`

// session is the state of one interactive run. The last generated addresses
// are kept here so that "save" can write them.
type session struct {
	svc           service.Service
	logger        logr.Logger
	in            *bufio.Scanner
	out           io.Writer
	defaultFormat string
	addrs         []string
}

func (a *app) menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := &session{
				svc:           a.svc,
				logger:        a.logger,
				in:            bufio.NewScanner(cmd.InOrStdin()),
				out:           cmd.OutOrStdout(),
				defaultFormat: a.cfg.Format,
			}
			return s.run()
		},
	}
}

// run loops until the user exits or input ends. Validation errors are
// reported and the menu is shown again.
func (s *session) run() error {
	for {
		fmt.Fprintln(s.out, menuText)
		choice, ok := s.prompt("Select an option (1-4): ")
		if !ok {
			return s.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = s.generate()
		case "2":
			err = s.eui64()
		case "3":
			err = s.save()
		case "4", "q", "exit":
			fmt.Fprintln(s.out, "Exiting ip6pool.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please choose again.")
			continue
		}
		if err == io.EOF {
			return s.in.Err()
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) ask(label string) (string, error) {
	v, ok := s.prompt(label)
	if !ok {
		return "", io.EOF
	}
	return v, nil
}

func (s *session) generate() error {
	countText, err := s.ask("Enter the number of addresses to generate: ")
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(countText)
	if err != nil || count < 0 {
		return invalid(s.logger, fmt.Errorf("invalid count %q", countText), "count", countText)
	}
	version, err := s.ask("IPv4 or IPv6 (v4/v6)? ")
	if err != nil {
		return err
	}

	switch strings.ToLower(version) {
	case "v4":
		set, err := s.svc.GenerateIPv4(count)
		if err != nil {
			return err
		}
		s.addrs = set.Strings()
		s.show("Generated IPv4 Addresses:")
	case "v6":
		text, err := s.ask("Enter IPv6 prefix (e.g., 2001:db8::/64): ")
		if err != nil {
			return err
		}
		p, err := s.svc.ValidatePrefix(text)
		if err != nil {
			return err
		}
		set, err := s.svc.GenerateIPv6(p, count)
		if err != nil {
			return err
		}
		s.addrs = set.Strings()
		s.show("Generated IPv6 Addresses:")
	default:
		return invalid(s.logger, fmt.Errorf("unknown address version %q, want v4 or v6", version), "version", version)
	}
	return nil
}

func (s *session) eui64() error {
	mac, err := s.ask("Enter MAC address (e.g., 00:1A:2B:3C:4D:5E): ")
	if err != nil {
		return err
	}
	text, err := s.ask("Enter IPv6 prefix (e.g., 2001:db8::/64): ")
	if err != nil {
		return err
	}
	p, err := s.svc.ValidatePrefix(text)
	if err != nil {
		return err
	}
	addr, err := s.svc.DeriveEUI64(p, mac)
	if err != nil {
		return err
	}
	s.addrs = []string{addr.String()}
	fmt.Fprintf(s.out, "Generated EUI-64 IPv6 Address: %s\n", addr)
	return nil
}

func (s *session) save() error {
	if len(s.addrs) == 0 {
		fmt.Fprintln(s.out, "No addresses generated yet.")
		return nil
	}
	path, err := s.ask("Enter filename to save: ")
	if err != nil {
		return err
	}
	if path == "" {
		return invalid(s.logger, errors.New("empty filename"), "file", path)
	}
	formatText, err := s.ask(fmt.Sprintf("Choose format (text/json/csv/yaml) [%s]: ", s.defaultFormat))
	if err != nil {
		return err
	}
	if formatText == "" {
		formatText = s.defaultFormat
	}
	f, err := export.ParseFormat(formatText)
	if err != nil {
		return invalid(s.logger, err, "format", formatText, "file", path)
	}
	if err := s.svc.Save(path, s.addrs, f); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved %d addresses to %s.\n", len(s.addrs), path)
	return nil
}

func (s *session) show(title string) {
	fmt.Fprintln(s.out, title)
	for _, a := range s.addrs {
		fmt.Fprintln(s.out, " ", a)
	}
}
