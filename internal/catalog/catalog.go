// Package catalog holds the read-only per-language message bundles used by
// the conversation engine. Bundles are fixed at process start; English is
// the fallback for any unrecognized language key.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTickets is the upper bound for a single booking.
const MaxTickets = 10

// FallbackLanguage is used whenever a language key has no bundle.
const FallbackLanguage = "English"

// SupportedLanguages lists the selectable languages in presentation order.
var SupportedLanguages = []string{"Marathi", "Hindi", "Punjabi", "Malayalam", "English"}

// Destinations lists the bookable places.
var Destinations = []string{"Delhi", "Kerala"}

// SampleDates are the fixed date suggestions offered at the date step.
var SampleDates = []string{"2025-12-25", "2026-01-01", "2026-05-15"}

// The Delhi tour circuits are proper nouns and identical across bundles.
var delhiTourOptions = []string{
	"Dilli Ki Darohar (Morning Circuit-1)",
	"Dilli ka Rahasya (Morning Circuit-2)",
	"Rashtrapati Bhawan (Change of Guard Ceremony Morning Tour - Dilli ka Raisina House)",
}

const (
	bookLink   = "https://delhitourism.gov.in/ebooking/DekhoMeriDilli"
	cancelLink = "https://delhitourism.gov.in/ebooking/cancellation"
)

// Bundle is the fixed message set for one language.
type Bundle struct {
	Greeting         string
	HowCanIHelp      string
	AskName          string
	AskTickets       string
	AskDate          string
	AskPlace         string
	BookingConfirmed string
	BookingCancelled string
	InvalidDate      string
	InvalidTickets   string
	TourOptions      []string
	BookLink         string
	CancelLink       string

	// confirmFormat uses indexed verbs: 1=name, 2=tickets, 3=date, 4=place.
	// Argument order differs between languages.
	confirmFormat string
}

// ConfirmBooking renders the booking confirmation prompt for the draft.
func (b *Bundle) ConfirmBooking(name string, tickets int, date, place string) string {
	return fmt.Sprintf(b.confirmFormat, name, tickets, date, place)
}

// Catalog maps canonical language names to their bundles.
type Catalog struct {
	bundles map[string]*Bundle
}

// New builds the full message catalog.
func New() *Catalog {
	return &Catalog{bundles: map[string]*Bundle{
		"English": {
			Greeting:         "Hello! Which language would you like to talk in?",
			HowCanIHelp:      "How can I help you today?",
			AskName:          "Please tell me your name.",
			AskTickets:       fmt.Sprintf("How many tickets do you want? (1-%d)", MaxTickets),
			AskDate:          "Please provide the visit date in YYYY-MM-DD format.",
			AskPlace:         "Where would you like to visit? Please choose one.",
			BookingConfirmed: "Your booking is confirmed! 🎉 Thank you!",
			BookingCancelled: "Booking cancelled. You can start anytime.",
			InvalidDate:      "Sorry, the date is invalid or in the past. Please input a valid date.",
			InvalidTickets:   fmt.Sprintf("Please enter a number of tickets between 1 and %d.", MaxTickets),
			TourOptions:      delhiTourOptions,
			BookLink:         bookLink,
			CancelLink:       cancelLink,
			confirmFormat:    "Great! ✨ Booking %[2]d tickets for %[1]s on %[3]s to visit %[4]s. Please confirm with YES or cancel with NO.",
		},
		"Hindi": {
			Greeting:         "नमस्ते! आप किस भाषा में बात करना चाहेंगे?",
			HowCanIHelp:      "मैं आज आपकी कैसे मदद कर सकता हूँ?",
			AskName:          "कृपया अपना नाम बताइए।",
			AskTickets:       fmt.Sprintf("आपको कितने टिकट चाहिए? (1-%d)", MaxTickets),
			AskDate:          "कृपया यात्रा की तारीख YYYY-MM-DD प्रारूप में दीजिए।",
			AskPlace:         "आप कहाँ घूमना चाहेंगे? कृपया एक चुनिए।",
			BookingConfirmed: "आपकी बुकिंग पक्की हो गई! 🎉 धन्यवाद!",
			BookingCancelled: "बुकिंग रद्द कर दी गई। आप कभी भी फिर से शुरू कर सकते हैं।",
			InvalidDate:      "क्षमा करें, तारीख अमान्य है या बीत चुकी है। कृपया सही तारीख दीजिए।",
			InvalidTickets:   fmt.Sprintf("कृपया 1 और %d के बीच टिकटों की संख्या दर्ज करें।", MaxTickets),
			TourOptions:      delhiTourOptions,
			BookLink:         bookLink,
			CancelLink:       cancelLink,
			confirmFormat:    "बहुत बढ़िया! ✨ %[1]s के लिए %[2]d टिकट %[3]s को %[4]s घूमने के लिए बुक किए जा रहे हैं। कृपया YES से पुष्टि करें या NO से रद्द करें।",
		},
		"Marathi": {
			Greeting:         "नमस्कार! तुम्हाला कोणत्या भाषेत बोलायला आवडेल?",
			HowCanIHelp:      "आज मी तुमची कशी मदत करू शकतो?",
			AskName:          "कृपया तुमचे नाव सांगा.",
			AskTickets:       fmt.Sprintf("तुम्हाला किती तिकिटे हवी आहेत? (1-%d)", MaxTickets),
			AskDate:          "कृपया भेटीची तारीख YYYY-MM-DD स्वरूपात द्या.",
			AskPlace:         "तुम्हाला कुठे भेट द्यायची आहे? कृपया एक निवडा.",
			BookingConfirmed: "तुमचे बुकिंग निश्चित झाले! 🎉 धन्यवाद!",
			BookingCancelled: "बुकिंग रद्द झाले. तुम्ही कधीही पुन्हा सुरुवात करू शकता.",
			InvalidDate:      "क्षमस्व, तारीख अवैध आहे किंवा उलटून गेली आहे. कृपया वैध तारीख द्या.",
			InvalidTickets:   fmt.Sprintf("कृपया 1 ते %d दरम्यान तिकिटांची संख्या द्या.", MaxTickets),
			TourOptions:      delhiTourOptions,
			BookLink:         bookLink,
			CancelLink:       cancelLink,
			confirmFormat:    "छान! ✨ %[1]s साठी %[2]d तिकिटे %[3]s रोजी %[4]s ला भेट देण्यासाठी बुक होत आहेत. कृपया YES ने पुष्टी करा किंवा NO ने रद्द करा.",
		},
		"Punjabi": {
			Greeting:         "ਸਤ ਸ੍ਰੀ ਅਕਾਲ! ਤੁਸੀਂ ਕਿਹੜੀ ਭਾਸ਼ਾ ਵਿੱਚ ਗੱਲ ਕਰਨਾ ਚਾਹੋਗੇ?",
			HowCanIHelp:      "ਅੱਜ ਮੈਂ ਤੁਹਾਡੀ ਕਿਵੇਂ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ?",
			AskName:          "ਕਿਰਪਾ ਕਰਕੇ ਆਪਣਾ ਨਾਮ ਦੱਸੋ।",
			AskTickets:       fmt.Sprintf("ਤੁਹਾਨੂੰ ਕਿੰਨੀਆਂ ਟਿਕਟਾਂ ਚਾਹੀਦੀਆਂ ਹਨ? (1-%d)", MaxTickets),
			AskDate:          "ਕਿਰਪਾ ਕਰਕੇ ਫੇਰੀ ਦੀ ਤਾਰੀਖ YYYY-MM-DD ਰੂਪ ਵਿੱਚ ਦਿਓ।",
			AskPlace:         "ਤੁਸੀਂ ਕਿੱਥੇ ਜਾਣਾ ਚਾਹੋਗੇ? ਕਿਰਪਾ ਕਰਕੇ ਇੱਕ ਚੁਣੋ।",
			BookingConfirmed: "ਤੁਹਾਡੀ ਬੁਕਿੰਗ ਪੱਕੀ ਹੋ ਗਈ! 🎉 ਧੰਨਵਾਦ!",
			BookingCancelled: "ਬੁਕਿੰਗ ਰੱਦ ਕਰ ਦਿੱਤੀ ਗਈ। ਤੁਸੀਂ ਕਦੇ ਵੀ ਦੁਬਾਰਾ ਸ਼ੁਰੂ ਕਰ ਸਕਦੇ ਹੋ।",
			InvalidDate:      "ਮਾਫ਼ ਕਰਨਾ, ਤਾਰੀਖ ਗਲਤ ਹੈ ਜਾਂ ਲੰਘ ਚੁੱਕੀ ਹੈ। ਕਿਰਪਾ ਕਰਕੇ ਸਹੀ ਤਾਰੀਖ ਦਿਓ।",
			InvalidTickets:   fmt.Sprintf("ਕਿਰਪਾ ਕਰਕੇ 1 ਅਤੇ %d ਦੇ ਵਿਚਕਾਰ ਟਿਕਟਾਂ ਦੀ ਗਿਣਤੀ ਦਿਓ।", MaxTickets),
			TourOptions:      delhiTourOptions,
			BookLink:         bookLink,
			CancelLink:       cancelLink,
			confirmFormat:    "ਵਧੀਆ! ✨ %[1]s ਲਈ %[2]d ਟਿਕਟਾਂ %[3]s ਨੂੰ %[4]s ਘੁੰਮਣ ਲਈ ਬੁੱਕ ਹੋ ਰਹੀਆਂ ਹਨ। ਕਿਰਪਾ ਕਰਕੇ YES ਨਾਲ ਪੁਸ਼ਟੀ ਕਰੋ ਜਾਂ NO ਨਾਲ ਰੱਦ ਕਰੋ।",
		},
		"Malayalam": {
			Greeting:         "നമസ്കാരം! ഏത് ഭാഷയിൽ സംസാരിക്കാൻ ആഗ്രഹിക്കുന്നു?",
			HowCanIHelp:      "ഇന്ന് ഞാൻ നിങ്ങളെ എങ്ങനെ സഹായിക്കാം?",
			AskName:          "ദയവായി നിങ്ങളുടെ പേര് പറയൂ.",
			AskTickets:       fmt.Sprintf("എത്ര ടിക്കറ്റുകൾ വേണം? (1-%d)", MaxTickets),
			AskDate:          "സന്ദർശന തീയതി YYYY-MM-DD രൂപത്തിൽ നൽകൂ.",
			AskPlace:         "എവിടെ സന്ദർശിക്കാൻ ആഗ്രഹിക്കുന്നു? ഒന്ന് തിരഞ്ഞെടുക്കൂ.",
			BookingConfirmed: "നിങ്ങളുടെ ബുക്കിംഗ് സ്ഥിരീകരിച്ചു! 🎉 നന്ദി!",
			BookingCancelled: "ബുക്കിംഗ് റദ്ദാക്കി. എപ്പോൾ വേണമെങ്കിലും വീണ്ടും തുടങ്ങാം.",
			InvalidDate:      "ക്ഷമിക്കണം, തീയതി അസാധുവാണ് അല്ലെങ്കിൽ കഴിഞ്ഞുപോയി. ദയവായി ശരിയായ തീയതി നൽകൂ.",
			InvalidTickets:   fmt.Sprintf("ദയവായി 1-നും %d-നും ഇടയിലുള്ള ടിക്കറ്റ് എണ്ണം നൽകൂ.", MaxTickets),
			TourOptions:      delhiTourOptions,
			BookLink:         bookLink,
			CancelLink:       cancelLink,
			confirmFormat:    "കൊള്ളാം! ✨ %[1]s-ന് വേണ്ടി %[2]d ടിക്കറ്റുകൾ %[3]s-ന് %[4]s സന്ദർശിക്കാൻ ബുക്ക് ചെയ്യുന്നു. YES നൽകി സ്ഥിരീകരിക്കൂ അല്ലെങ്കിൽ NO നൽകി റദ്ദാക്കൂ.",
		},
	}}
}

// ForLanguage returns the bundle for lang, falling back to English for any
// unrecognized key.
func (c *Catalog) ForLanguage(lang string) *Bundle {
	if b, ok := c.bundles[lang]; ok {
		return b
	}
	return c.bundles[FallbackLanguage]
}

// CanonicalLanguage normalizes raw language input for catalog matching:
// trim, uppercase the first rune, lowercase the rest.
func CanonicalLanguage(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// IsSupported reports whether lang (already canonicalized) is selectable.
func IsSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// TicketQuickReplies returns the "1".."MaxTickets" suggestion list.
func TicketQuickReplies() []string {
	out := make([]string, MaxTickets)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}
