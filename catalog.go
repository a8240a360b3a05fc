package chatexport

// MessageKey identifies a user-facing diagnostic message.
type MessageKey string

// Message keys. The i18n catalog documents the arguments each message takes.
const (
	MsgHTMLNotFound            MessageKey = "error_html_not_found"
	MsgErrorReadingHTML        MessageKey = "error_reading_html"
	MsgNoTurnsFound            MessageKey = "no_turns_found"
	MsgCheckHTMLStructure      MessageKey = "check_html_structure"
	MsgAttemptingDirectFind    MessageKey = "attempting_direct_find"
	MsgFoundDirectContainers   MessageKey = "found_direct_containers"
	MsgCouldNotFindTextForRole MessageKey = "could_not_find_text_for_role"
	MsgNoDirectContainersFound MessageKey = "no_direct_containers_found"
	MsgWarningNoTextContent    MessageKey = "warning_no_text_content"
	MsgNoHistoryExtracted      MessageKey = "no_history_extracted"
	MsgErrorWritingJSON        MessageKey = "error_writing_json"
	MsgHistoryExtracted        MessageKey = "history_extracted_success"
	MsgVerificationHeader      MessageKey = "verification_header"
	MsgVerificationCount       MessageKey = "verification_extracted_count"
	MsgVerificationFirst       MessageKey = "verification_first_message"
	MsgVerificationLast        MessageKey = "verification_last_message"
	MsgVerificationJSONEmpty   MessageKey = "verification_json_empty"
	MsgErrorDecodeJSON         MessageKey = "error_decode_json"
	MsgErrorVerification       MessageKey = "error_verification"
	MsgBatchFailed             MessageKey = "batch_failed"
)

// Command-line help keys.
const (
	MsgCLIDescription     MessageKey = "cli_description"
	MsgCLIHTMLFileHelp    MessageKey = "cli_html_file_help"
	MsgCLIOutputHelp      MessageKey = "cli_output_help"
	MsgCLILanguageHelp    MessageKey = "cli_language_help"
	MsgCLIConcurrencyHelp MessageKey = "cli_concurrency_help"
	MsgCLINoVerifyHelp    MessageKey = "cli_no_verify_help"
	MsgCLIVerboseHelp     MessageKey = "cli_verbose_help"
)

// Catalog formats user-facing messages in one selected language.
// A Catalog is passed explicitly to whoever prints diagnostics.
type Catalog interface {
	// Language returns the BCP 47 tag of the catalog's language.
	Language() string

	// Sprintf formats the message identified by key. Integer arguments
	// are printed as plain digits, without locale grouping.
	Sprintf(key MessageKey, args ...any) string
}
