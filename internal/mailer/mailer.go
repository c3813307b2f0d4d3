package mailer

import "embed"

const (
	FROM_NAME                   = "DiplomDocs"
	MAX_RETRY                   = 3
	COLLABORATOR_ADDED_TEMPLATE = "collaborator_added.tmpl"
	DOCUMENT_STATUS_TEMPLATE    = "document_status.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}
