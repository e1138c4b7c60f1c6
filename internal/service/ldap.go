package service

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"gradproject-teams/internal/config"
	"gradproject-teams/internal/domain"
	"gradproject-teams/internal/logger"

	"github.com/go-ldap/ldap/v3"
)

// ldapClient is the subset of *ldap.Conn the directory uses
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialURL("ldaps://"+addr, ldap.DialWithTLSConfig(cfg))
}

// LDAPEntry represents the attributes read for a student
type LDAPEntry struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	GivenName   string `json:"givenName"`
	SN          string `json:"sn"`
	Mail        string `json:"mail"`
}

// FullName returns the display name, falling back to given name and surname
func (e LDAPEntry) FullName() string {
	if name := strings.TrimSpace(e.DisplayName); name != "" {
		return name
	}
	return strings.TrimSpace(e.GivenName + " " + e.SN)
}

// LDAPDirectory resolves student names from the university directory
type LDAPDirectory struct {
	cfg *config.Config
}

// NewLDAPDirectory creates a new LDAP directory
func NewLDAPDirectory(cfg *config.Config) *LDAPDirectory {
	return &LDAPDirectory{cfg: cfg}
}

// SearchByMail returns the directory entries whose mail equals email
func (d *LDAPDirectory) SearchByMail(email string) ([]LDAPEntry, error) {
	addr := d.cfg.LDAPHost + ":" + d.cfg.LDAPPort

	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: d.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if d.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(d.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(d.cfg.LDAPBindDN, d.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	req := ldap.NewSearchRequest(
		d.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1,
		d.cfg.LDAPTimeoutSec,
		false,
		"(mail="+ldap.EscapeFilter(domain.NormalizeEmail(email))+")",
		[]string{"displayName", "givenName", "sn", "mail"},
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]LDAPEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, LDAPEntry{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			GivenName:   e.GetAttributeValue("givenName"),
			SN:          e.GetAttributeValue("sn"),
			Mail:        e.GetAttributeValue("mail"),
		})
	}
	return out, nil
}

// LookupName returns the directory name for email, or "" when the directory
// has no entry
func (d *LDAPDirectory) LookupName(ctx context.Context, email string) (string, error) {
	entries, err := d.SearchByMail(email)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("email", email).Warn("LDAP lookup failed")
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}
	return entries[0].FullName(), nil
}
