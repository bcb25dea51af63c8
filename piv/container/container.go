// Package container lists PIV card data containers defined in NIST SP 800-73-4 Part 1 Table 2.
//
// A container can be identified by its canonical name, a short alias, its OID,
// or the BER-TLV tag used to read it with GET DATA.
// Resolve normalizes any of these to the canonical name.
package container

import (
	"fmt"
	"sort"
	"strings"

	"github.com/usnistgov/pivcheck/piv/tlv"
)

// Container describes a PIV data container.
type Container struct {
	// Name is the canonical name.
	Name string `json:"name"`
	// Short is a short alias, may be empty.
	Short string `json:"short,omitempty"`
	// OID is the object identifier in dotted form.
	OID string `json:"oid"`
	// ID is the container ID, used by legacy card edge interfaces.
	ID uint16 `json:"id"`
	// Tag is the BER-TLV tag of the data object.
	Tag tlv.Tag `json:"tag"`
	// Table is the SP 800-73-4 Part 1 Appendix A table number describing the data model.
	Table int `json:"table"`
}

func (c Container) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, c.OID)
}

// Canonical container names.
const (
	CardCapabilityContainer                 = "CardCapabilityContainer"
	CardHolderUniqueIdentifier              = "CardHolderUniqueIdentifier"
	X509CertificateForPIVAuthentication     = "X509CertificateForPIVAuthentication"
	CardholderFingerprints                  = "CardholderFingerprints"
	SecurityObject                          = "SecurityObject"
	CardholderFacialImage                   = "CardholderFacialImage"
	X509CertificateForCardAuthentication    = "X509CertificateForCardAuthentication"
	X509CertificateForDigitalSignature      = "X509CertificateForDigitalSignature"
	X509CertificateForKeyManagement         = "X509CertificateForKeyManagement"
	PrintedInformation                      = "PrintedInformation"
	DiscoveryObject                         = "DiscoveryObject"
	KeyHistoryObject                        = "KeyHistoryObject"
	CardholderIrisImages                    = "CardholderIrisImages"
	BiometricInformationTemplatesGroup      = "BiometricInformationTemplatesGroupTemplate"
	SecureMessagingCertificateSigner        = "SecureMessagingCertificateSigner"
	PairingCodeReferenceDataContainer       = "PairingCodeReferenceDataContainer"
	retiredX509CertificateForKeyManagementN = "RetiredX509CertificateForKeyManagement%d"
)

// NumRetired is the number of retired key management certificate containers.
const NumRetired = 20

// RetiredX509CertificateForKeyManagement returns canonical name of a retired key management certificate container.
// n is between 1 and NumRetired.
func RetiredX509CertificateForKeyManagement(n int) string {
	return fmt.Sprintf(retiredX509CertificateForKeyManagementN, n)
}

const oidPrefix = "2.16.840.1.101.3.7."

func doTag(b byte) tlv.Tag {
	return tlv.MakeTag(0x5F, 0xC1, b)
}

var all = func() (list []Container) {
	list = []Container{
		{Name: CardCapabilityContainer, Short: "CCC", OID: oidPrefix + "1.219.0", ID: 0xDB00, Tag: doTag(0x07), Table: 8},
		{Name: CardHolderUniqueIdentifier, Short: "CHUID", OID: oidPrefix + "2.48.0", ID: 0x3000, Tag: doTag(0x02), Table: 9},
		{Name: X509CertificateForPIVAuthentication, Short: "PIVAuth", OID: oidPrefix + "2.1.1", ID: 0x0101, Tag: doTag(0x05), Table: 10},
		{Name: CardholderFingerprints, Short: "Fingerprints", OID: oidPrefix + "2.96.16", ID: 0x6010, Tag: doTag(0x03), Table: 11},
		{Name: SecurityObject, Short: "SO", OID: oidPrefix + "2.144.0", ID: 0x9000, Tag: doTag(0x06), Table: 12},
		{Name: CardholderFacialImage, Short: "FacialImage", OID: oidPrefix + "2.96.48", ID: 0x6030, Tag: doTag(0x08), Table: 13},
		{Name: PrintedInformation, Short: "Printed", OID: oidPrefix + "2.48.1", ID: 0x3001, Tag: doTag(0x09), Table: 14},
		{Name: X509CertificateForDigitalSignature, Short: "DigSig", OID: oidPrefix + "2.1.0", ID: 0x0100, Tag: doTag(0x0A), Table: 15},
		{Name: X509CertificateForKeyManagement, Short: "KeyMgmt", OID: oidPrefix + "2.1.2", ID: 0x0102, Tag: doTag(0x0B), Table: 16},
		{Name: X509CertificateForCardAuthentication, Short: "CardAuth", OID: oidPrefix + "2.5.0", ID: 0x0500, Tag: doTag(0x01), Table: 17},
		{Name: DiscoveryObject, Short: "Discovery", OID: oidPrefix + "2.96.80", ID: 0x6050, Tag: tlv.MakeTag(0x7E), Table: 18},
		{Name: KeyHistoryObject, Short: "KeyHistory", OID: oidPrefix + "2.96.96", ID: 0x6060, Tag: doTag(0x0C), Table: 19},
	}
	for n := 1; n <= NumRetired; n++ {
		list = append(list, Container{
			Name:  RetiredX509CertificateForKeyManagement(n),
			Short: fmt.Sprintf("Retired%d", n),
			OID:   fmt.Sprintf("%s2.16.%d", oidPrefix, n),
			ID:    0x1000 + uint16(n),
			Tag:   doTag(0x0C + byte(n)),
			Table: 19 + n,
		})
	}
	list = append(list,
		Container{Name: CardholderIrisImages, Short: "Iris", OID: oidPrefix + "2.16.21", ID: 0x1015, Tag: doTag(0x21), Table: 40},
		Container{Name: BiometricInformationTemplatesGroup, Short: "BITGT", OID: oidPrefix + "2.16.22", ID: 0x1016, Tag: tlv.MakeTag(0x7F, 0x61), Table: 41},
		Container{Name: SecureMessagingCertificateSigner, Short: "SMSigner", OID: oidPrefix + "2.16.23", ID: 0x1017, Tag: doTag(0x22), Table: 42},
		Container{Name: PairingCodeReferenceDataContainer, Short: "PCRDC", OID: oidPrefix + "2.16.24", ID: 0x1018, Tag: doTag(0x23), Table: 43},
	)
	return list
}()

var aliases = func() map[string]int {
	m := map[string]int{}
	add := func(key string, i int) {
		if key == "" {
			return
		}
		if _, dup := m[key]; dup {
			panic(fmt.Errorf("duplicate container alias %s", key))
		}
		m[key] = i
	}
	for i, c := range all {
		add(strings.ToLower(c.Name), i)
		add(strings.ToLower(c.Short), i)
		add(c.OID, i)
		add("tag:"+c.Tag.String(), i)
	}
	return m
}()

// List returns all containers in SP 800-73-4 table order.
func List() []Container {
	return append([]Container(nil), all...)
}

// Lookup finds a container by canonical name, short alias, OID, or data object tag in hexadecimal.
// Names and aliases are case insensitive.
func Lookup(id string) (c Container, ok bool) {
	id = strings.TrimSpace(id)
	if i, ok := aliases[strings.ToLower(id)]; ok {
		return all[i], true
	}
	if tag, e := tlv.TagFromHex(id); e == nil {
		if i, ok := aliases["tag:"+tag.String()]; ok {
			return all[i], true
		}
	}
	return Container{}, false
}

// ByTag finds a container by data object tag.
func ByTag(tag tlv.Tag) (c Container, ok bool) {
	i, ok := aliases["tag:"+tag.String()]
	if !ok {
		return Container{}, false
	}
	return all[i], true
}

// Resolve normalizes a container identifier to its canonical name.
// If the identifier is not recognized, it is returned unchanged.
func Resolve(id string) string {
	if c, ok := Lookup(id); ok {
		return c.Name
	}
	return id
}

// Names returns canonical names of all containers, sorted alphabetically.
func Names() (names []string) {
	for _, c := range all {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}
