// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package network regroups collecting information about the network
// interfaces
package network

import (
	"errors"
	"strings"

	"github.com/shirou/gopsutil/v4/net"
)

// ErrNoInterface means the host exposes no usable network interface.
var ErrNoInterface = errors.New("network: no non-loopback interface found")

// Interface is one network interface and its addresses
type Interface struct {
	// Name is the name of the interface
	Name string `json:"name"`
	// MacAddress is the hardware address, empty for virtual interfaces
	// without one
	MacAddress string `json:"macaddress,omitempty"`
	// IPv4 is the list of IPv4 addresses bound to the interface
	IPv4 []string `json:"ipv4"`
	// IPv6 is the list of IPv6 addresses bound to the interface
	IPv6 []string `json:"ipv6"`
}

// Info holds the host's network identity: the primary addresses plus the
// full interface list
type Info struct {
	// MacAddress is the hardware address of the first up, non-loopback
	// interface
	MacAddress string `json:"macaddress"`
	// IPAddress is the first IPv4 address of that interface
	IPAddress string `json:"ipaddress"`
	// IPAddressV6 is the first IPv6 address of that interface, if any
	IPAddressV6 string `json:"ipaddressv6,omitempty"`
	// Interfaces lists every interface on the host
	Interfaces []Interface `json:"interfaces"`
}

// splitAddr strips the CIDR suffix gopsutil carries in the address string.
func splitAddr(addr string) string {
	host, _, found := strings.Cut(addr, "/")
	if found {
		return host
	}
	return addr
}

func isIPv4(addr string) bool {
	return strings.Count(addr, ":") == 0
}

func isLoopback(iface net.InterfaceStat) bool {
	for _, flag := range iface.Flags {
		if flag == "loopback" {
			return true
		}
	}
	return false
}

func isUp(iface net.InterfaceStat) bool {
	for _, flag := range iface.Flags {
		if flag == "up" {
			return true
		}
	}
	return false
}

// CollectInfo collects the network information of the host.
func CollectInfo() (*Info, error) {
	stats, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	return buildInfo(stats)
}

func buildInfo(stats []net.InterfaceStat) (*Info, error) {
	info := &Info{}

	for _, stat := range stats {
		iface := Interface{
			Name:       stat.Name,
			MacAddress: stat.HardwareAddr,
			IPv4:       []string{},
			IPv6:       []string{},
		}
		for _, addr := range stat.Addrs {
			host := splitAddr(addr.Addr)
			if isIPv4(host) {
				iface.IPv4 = append(iface.IPv4, host)
			} else {
				iface.IPv6 = append(iface.IPv6, host)
			}
		}
		info.Interfaces = append(info.Interfaces, iface)

		// the primary identity is the first up, non-loopback interface
		// carrying an address
		if info.MacAddress == "" && isUp(stat) && !isLoopback(stat) &&
			(len(iface.IPv4) > 0 || len(iface.IPv6) > 0) {
			info.MacAddress = stat.HardwareAddr
			if len(iface.IPv4) > 0 {
				info.IPAddress = iface.IPv4[0]
			}
			if len(iface.IPv6) > 0 {
				info.IPAddressV6 = iface.IPv6[0]
			}
		}
	}

	if info.MacAddress == "" {
		return info, ErrNoInterface
	}
	return info, nil
}

// AsJSON collects the network information and renders it as a marshallable
// object. A host with no usable interface yields the interface list alone
// with a warning.
func AsJSON() (interface{}, []string, error) {
	info, err := CollectInfo()
	if err != nil && !errors.Is(err, ErrNoInterface) {
		return nil, nil, err
	}

	var warns []string
	if err != nil {
		warns = append(warns, err.Error())
	}
	return info, warns, nil
}

// Network is the inventory collector for this package.
type Network struct{}

// Name returns the name of the collector
func (*Network) Name() string { return "network" }

// Collect collects the network information
func (*Network) Collect() (interface{}, []string, error) {
	return AsJSON()
}
