// Package boundary validates PIV data element lengths against NIST SP 800-73-4 Part 1 Appendix A.
//
// Each container has a Ruleset mapping data element tags to length rules.
// Manager holds the rulesets of all containers; Default returns the process-wide catalogue.
package boundary

import (
	"github.com/usnistgov/pivcheck/core/logging"
)

var logger = logging.New("boundary")
