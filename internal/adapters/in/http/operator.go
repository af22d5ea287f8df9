package http

import (
	"net/http"
	"strings"

	"logitrack/internal/core/domain/model/operator"
)

// Headers carrying the acting operator.
const (
	HeaderOperatorName     = "X-Operator-Name"
	HeaderOperatorRole     = "X-Operator-Role"
	HeaderOperatorOfficeID = "X-Operator-Office-Id"
)

// operatorFromRequest reads the operator headers. A request without any of
// them acts as operator.Guest. The role name is case-insensitive.
func operatorFromRequest(req *http.Request) (operator.Operator, error) {
	name := strings.TrimSpace(req.Header.Get(HeaderOperatorName))
	roleName := strings.TrimSpace(req.Header.Get(HeaderOperatorRole))
	officeID := strings.TrimSpace(req.Header.Get(HeaderOperatorOfficeID))

	if name == "" && roleName == "" && officeID == "" {
		return operator.Guest(), nil
	}

	role := operator.Public
	if roleName != "" {
		var err error
		if role, err = operator.RoleFromString(strings.ToUpper(roleName)); err != nil {
			return operator.Operator{}, err
		}
	}
	if name == "" {
		name = operator.Guest().Name()
	}

	return operator.New(name, role, officeID)
}
