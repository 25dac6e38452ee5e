// Command ip6pool generates IPv6/IPv4 address pools and EUI-64 addresses.
package main

import "github.com/zlobste/ip6pool/internal/cli"

func main() {
	cli.Execute()
}
