package email

import "strings"

// DisplayName resolves the salutation for an outbound email: the profile name
// when one is set, otherwise the local part of the address. A malformed
// address without '@' is used as-is rather than rejected here.
func DisplayName(profileName, address string) string {
	if name := strings.TrimSpace(profileName); name != "" {
		return name
	}
	local := address
	if at := strings.Index(address, "@"); at > 0 {
		local = address[:at]
	}
	return local
}
