package boundary

import (
	"github.com/usnistgov/pivcheck/piv/container"
	"github.com/usnistgov/pivcheck/piv/tlv"
)

// Data element tags shared by several containers.
var (
	TagErrorDetectionCode = tlv.MakeTag(0xFE)
	TagCertificate        = tlv.MakeTag(0x70)
	TagCertInfo           = tlv.MakeTag(0x71)
	TagMSCUID             = tlv.MakeTag(0x72)
	TagBiometricData      = tlv.MakeTag(0xBC)
)

// Selected data element tags.
var (
	TagCardIdentifier            = tlv.MakeTag(0xF0)
	TagFASCN                     = tlv.MakeTag(0x30)
	TagGUID                      = tlv.MakeTag(0x34)
	TagExpirationDate            = tlv.MakeTag(0x35)
	TagIssuerAsymmetricSignature = tlv.MakeTag(0x3E)
	TagApplicationAID            = tlv.MakeTag(0x4F)
	TagPINUsagePolicy            = tlv.MakeTag(0x5F, 0x2F)
	TagNumberOfFingers           = tlv.MakeTag(0x02)
	TagBIT                       = tlv.MakeTag(0x7F, 0x60)
	TagIntermediateCVC           = tlv.MakeTag(0x7F, 0x21)
	TagPairingCode               = tlv.MakeTag(0x99)
)

func rule(tag tlv.Tag, name string, r Rule) TagRule {
	return TagRule{Tag: tag, Name: name, Rule: r}
}

func edc() TagRule {
	return rule(TagErrorDetectionCode, "Error Detection Code", FixedRule(0))
}

func mustRuleset(name string, rules ...TagRule) *Ruleset {
	rs, e := NewRuleset(name, rules...)
	if e != nil {
		panic(e)
	}
	return rs
}

// certificateRuleset applies to Tables 10, 15, 16, 17, and 20-39.
func certificateRuleset(name string) *Ruleset {
	return mustRuleset(name,
		rule(TagCertificate, "Certificate", VariableRule(0, 1856)),
		rule(TagCertInfo, "CertInfo", FixedRule(1)),
		rule(TagMSCUID, "MSCUID", VariableRule(0, 38)),
		edc(),
	)
}

// tables returns rulesets of SP 800-73-4 Part 1 Appendix A Tables 8-43.
func tables() (list []*Ruleset) {
	list = []*Ruleset{
		mustRuleset(container.CardCapabilityContainer,
			rule(TagCardIdentifier, "Card Identifier", FixedRule(21)),
			rule(tlv.MakeTag(0xF1), "Capability Container version number", FixedRule(1)),
			rule(tlv.MakeTag(0xF2), "Capability Grammar version number", FixedRule(1)),
			rule(tlv.MakeTag(0xF3), "Applications CardURL", VariableRule(0, 128)),
			rule(tlv.MakeTag(0xF4), "PKCS#15", FixedRule(1)),
			rule(tlv.MakeTag(0xF5), "Registered Data Model number", FixedRule(1)),
			rule(tlv.MakeTag(0xF6), "Access Control Rule Table", FixedRule(17)),
			rule(tlv.MakeTag(0xF7), "Card APDUs", FixedRule(0)),
			rule(tlv.MakeTag(0xFA), "Redirection Tag", FixedRule(0)),
			rule(tlv.MakeTag(0xFB), "Capability Tuples (CTs)", FixedRule(0)),
			rule(tlv.MakeTag(0xFC), "Status Tuples (STs)", FixedRule(0)),
			rule(tlv.MakeTag(0xFD), "Next CCC", FixedRule(0)),
			rule(tlv.MakeTag(0xE3), "Extended Application CardURL", VariableRule(0, 48)),
			rule(tlv.MakeTag(0xB4), "Security Object Buffer", VariableRule(0, 48)),
			edc(),
		),
		mustRuleset(container.CardHolderUniqueIdentifier,
			rule(tlv.MakeTag(0xEE), "Buffer Length", OrRule(0, 2)),
			rule(TagFASCN, "FASC-N", FixedRule(25)),
			rule(tlv.MakeTag(0x32), "Organizational Identifier", OrRule(0, 4)),
			rule(tlv.MakeTag(0x33), "DUNS", OrRule(0, 9)),
			rule(TagGUID, "GUID", FixedRule(16)),
			rule(TagExpirationDate, "Expiration Date", FixedRule(8)),
			rule(tlv.MakeTag(0x36), "Cardholder UUID", OrRule(0, 16)),
			rule(TagIssuerAsymmetricSignature, "Issuer Asymmetric Signature", SoftVariableRule(0, 2048)),
			edc(),
		),
		certificateRuleset(container.X509CertificateForPIVAuthentication),
		mustRuleset(container.CardholderFingerprints,
			rule(TagBiometricData, "Fingerprint I & II", SoftVariableRule(0, 4000)),
			edc(),
		),
		mustRuleset(container.SecurityObject,
			rule(tlv.MakeTag(0xBA), "Mapping of DG to ContainerID", VariableRule(0, 30)),
			rule(tlv.MakeTag(0xBB), "Security Object", VariableRule(0, 1298)),
			edc(),
		),
		mustRuleset(container.CardholderFacialImage,
			rule(TagBiometricData, "Image for Visual Verification", SoftVariableRule(0, 12704)),
			edc(),
		),
		mustRuleset(container.PrintedInformation,
			rule(tlv.MakeTag(0x01), "Name", VariableRule(0, 125)),
			rule(tlv.MakeTag(0x02), "Employee Affiliation", VariableRule(0, 20)),
			rule(tlv.MakeTag(0x04), "Expiration date", FixedRule(9)),
			rule(tlv.MakeTag(0x05), "Agency Card Serial Number", VariableRule(0, 20)),
			rule(tlv.MakeTag(0x06), "Issuer Identification", VariableRule(0, 15)),
			rule(tlv.MakeTag(0x07), "Organization Affiliation (Line 1)", VariableRule(0, 20)),
			rule(tlv.MakeTag(0x08), "Organization Affiliation (Line 2)", VariableRule(0, 20)),
			edc(),
		),
		certificateRuleset(container.X509CertificateForDigitalSignature),
		certificateRuleset(container.X509CertificateForKeyManagement),
		certificateRuleset(container.X509CertificateForCardAuthentication),
		mustRuleset(container.DiscoveryObject,
			rule(TagApplicationAID, "PIV Card Application AID", FixedRule(11)),
			rule(TagPINUsagePolicy, "PIN Usage Policy", FixedRule(2)),
		),
		mustRuleset(container.KeyHistoryObject,
			rule(tlv.MakeTag(0xC1), "keysWithOnCardCerts", FixedRule(1)),
			rule(tlv.MakeTag(0xC2), "keysWithOffCardCerts", FixedRule(1)),
			rule(tlv.MakeTag(0xF3), "offCardCertURL", VariableRule(0, 118)),
			edc(),
		),
	}
	for n := 1; n <= container.NumRetired; n++ {
		list = append(list, certificateRuleset(container.RetiredX509CertificateForKeyManagement(n)))
	}
	list = append(list,
		mustRuleset(container.CardholderIrisImages,
			rule(TagBiometricData, "Images for Iris", SoftVariableRule(0, 7100)),
			edc(),
		),
		mustRuleset(container.BiometricInformationTemplatesGroup,
			rule(TagNumberOfFingers, "Number of fingers", FixedRule(1)),
			rule(TagBIT, "BIT for each finger", VariableRule(0, 28)),
		),
		mustRuleset(container.SecureMessagingCertificateSigner,
			rule(TagCertificate, "X.509 Certificate for Content Signing", SoftVariableRule(0, 1858)),
			rule(TagCertInfo, "CertInfo", FixedRule(1)),
			rule(TagIntermediateCVC, "Intermediate CVC", VariableRule(0, 232)),
			edc(),
		),
		mustRuleset(container.PairingCodeReferenceDataContainer,
			rule(TagPairingCode, "Pairing Code", FixedRule(8)),
			edc(),
		),
	)
	return list
}
