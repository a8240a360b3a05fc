package i18n

import (
	"github.com/fwojciec/chatexport"
	"golang.org/x/text/language"
)

var tags = map[string]language.Tag{
	"en": language.English,
	"ka": language.MustParse("ka"),
}

// translations holds every message in every supported language.
// Arguments: MsgHTMLNotFound(path), MsgErrorReadingHTML(error),
// MsgFoundDirectContainers(count), MsgCouldNotFindTextForRole(role),
// MsgWarningNoTextContent(speaker, turn), MsgErrorWritingJSON(error),
// MsgHistoryExtracted(path), MsgVerificationCount(count),
// MsgVerificationJSONEmpty(path), MsgErrorDecodeJSON(path),
// MsgErrorVerification(error), MsgBatchFailed(failed, total).
// Counts are substituted as plain digits; see Catalog.Sprintf.
var translations = map[string]map[chatexport.MessageKey]string{
	"en": {
		chatexport.MsgHTMLNotFound:            "Error: HTML file not found at %s",
		chatexport.MsgErrorReadingHTML:        "Error reading HTML file: %s",
		chatexport.MsgNoTurnsFound:            "No conversation turns found with the specified <article> structure.",
		chatexport.MsgCheckHTMLStructure:      "Please check the HTML structure and adjust the script if necessary.",
		chatexport.MsgAttemptingDirectFind:    "Attempting to find message containers directly...",
		chatexport.MsgFoundDirectContainers:   "Found %s direct message containers. Processing them.",
		chatexport.MsgCouldNotFindTextForRole: "Could not find text content for a message with role '%s'",
		chatexport.MsgNoDirectContainersFound: "No direct message containers found either.",
		chatexport.MsgWarningNoTextContent:    "Warning: Found a %s message (turn #%s) but no text content inside the expected div.",
		chatexport.MsgNoHistoryExtracted:      "No chat history could be extracted. The JSON file will be empty or not created.",
		chatexport.MsgErrorWritingJSON:        "Error writing JSON file: %s",
		chatexport.MsgHistoryExtracted:        "Chat history successfully extracted to %s",
		chatexport.MsgVerificationHeader:      "\n--- Verification ---",
		chatexport.MsgVerificationCount:       "Extracted %s messages.",
		chatexport.MsgVerificationFirst:       "First message:",
		chatexport.MsgVerificationLast:        "Last message:",
		chatexport.MsgVerificationJSONEmpty:   "JSON file (%s) is empty.",
		chatexport.MsgErrorDecodeJSON:         "Error: Could not decode the JSON file %s. It might be malformed.",
		chatexport.MsgErrorVerification:       "An error occurred during verification: %s",
		chatexport.MsgBatchFailed:             "%s of %s files failed.",
		chatexport.MsgCLIDescription:          "Extracts chat history from an HTML file and saves it as a JSON format.",
		chatexport.MsgCLIHTMLFileHelp:         "Path to the HTML file from which to extract data.",
		chatexport.MsgCLIOutputHelp:           "Path to the JSON file where the extracted chat history will be saved. If not specified, a file with the same name as the HTML file (but .json extension) will be created in the same directory.",
		chatexport.MsgCLILanguageHelp:         "Language for script messages (en or ka). Default: en",
		chatexport.MsgCLIConcurrencyHelp:      "Number of HTML files processed in parallel.",
		chatexport.MsgCLINoVerifyHelp:         "Do not read back and summarize the written JSON file.",
		chatexport.MsgCLIVerboseHelp:          "Write structured debug logs to stderr.",
	},
	"ka": {
		chatexport.MsgHTMLNotFound:            "შეცდომა: HTML ფაილი ვერ მოიძებნა მითითებულ გზაზე: %s",
		chatexport.MsgErrorReadingHTML:        "შეცდომა HTML ფაილის წაკითხვისას: %s",
		chatexport.MsgNoTurnsFound:            "ვერ მოიძებნა საუბრის სტრუქტურა მითითებული <article> ტეგებით.",
		chatexport.MsgCheckHTMLStructure:      "გთხოვთ, შეამოწმოთ HTML სტრუქტურა და საჭიროებისამებრ შეცვალოთ სკრიპტი.",
		chatexport.MsgAttemptingDirectFind:    "ვცდილობ შეტყობინებების კონტეინერების პირდაპირ მოძებნას...",
		chatexport.MsgFoundDirectContainers:   "მოიძებნა %s პირდაპირი შეტყობინების კონტეინერი. მიმდინარეობს დამუშავება.",
		chatexport.MsgCouldNotFindTextForRole: "ვერ მოხერხდა ტექსტის შიგთავსის პოვნა როლისთვის: '%s'",
		chatexport.MsgNoDirectContainersFound: "პირდაპირი შეტყობინების კონტეინერებიც ვერ მოიძებნა.",
		chatexport.MsgWarningNoTextContent:    "გაფრთხილება: მოიძებნა %s შეტყობინება ( #%s ), მაგრამ ტექსტის შიგთავსი ვერ მოიძებნა მოსალოდნელ div-ში.",
		chatexport.MsgNoHistoryExtracted:      "ჩატის ისტორია ვერ იქნა ამოღებული. JSON ფაილი ცარიელი იქნება ან არ შეიქმნება.",
		chatexport.MsgErrorWritingJSON:        "შეცდომა JSON ფაილში ჩაწერისას: %s",
		chatexport.MsgHistoryExtracted:        "ჩატის ისტორია წარმატებით იქნა შენახული ფაილში: %s",
		chatexport.MsgVerificationHeader:      "\n--- ვერიფიკაცია ---",
		chatexport.MsgVerificationCount:       "ამოღებულია %s შეტყობინება.",
		chatexport.MsgVerificationFirst:       "პირველი შეტყობინება:",
		chatexport.MsgVerificationLast:        "ბოლო შეტყობინება:",
		chatexport.MsgVerificationJSONEmpty:   "JSON ფაილი (%s) ცარიელია.",
		chatexport.MsgErrorDecodeJSON:         "შეცდომა: ვერ მოხერხდა JSON ფაილის (%s) დეკოდირება. შესაძლოა, ფაილი დაზიანებულია.",
		chatexport.MsgErrorVerification:       "ვერიფიკაციისას მოხდა შეცდომა: %s",
		chatexport.MsgBatchFailed:             "%[2]s ფაილიდან %[1]s ვერ დამუშავდა.",
		chatexport.MsgCLIDescription:          "ამოიღებს ჩატის ისტორიას HTML ფაილიდან და შეინახავს JSON ფორმატში.",
		chatexport.MsgCLIHTMLFileHelp:         "HTML ფაილის მისამართი, საიდანაც უნდა მოხდეს მონაცემების ამოღება.",
		chatexport.MsgCLIOutputHelp:           "JSON ფაილის მისამართი, სადაც შეინახება ამოღებული ჩატის ისტორია. თუ არ არის მითითებული, შეიქმნება ფაილი იგივე სახელით, რაც HTML ფაილს აქვს, ოღონდ .json გაფართოებით, იმავე დირექტორიაში.",
		chatexport.MsgCLILanguageHelp:         "სკრიპტის შეტყობინებების ენა (en ან ka). ნაგულისხმევი: en",
		chatexport.MsgCLIConcurrencyHelp:      "პარალელურად დამუშავებული HTML ფაილების რაოდენობა.",
		chatexport.MsgCLINoVerifyHelp:         "ჩაწერილი JSON ფაილის ხელახლა წაკითხვისა და შეჯამების გამოტოვება.",
		chatexport.MsgCLIVerboseHelp:          "სტრუქტურირებული დიაგნოსტიკური ჟურნალის გამოტანა stderr-ში.",
	},
}
