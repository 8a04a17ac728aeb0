// ABOUTME: Command words and user-facing messages for the diary prompt
// ABOUTME: Ships English and Czech vocabularies
package repl

import (
	"fmt"
	"sort"
	"strings"
)

// Locale holds the command tokens, the entry terminator, the delete accept
// character and every message the command loop prints.
type Locale struct {
	Prev   string
	Next   string
	New    string
	Save   string
	Delete string
	Quit   string

	// Terminator ends multi-line entry text when typed on its own line.
	Terminator string
	// Accept confirms a delete; compared case-insensitively.
	Accept string

	Title      string
	PrevHelp   string
	NextHelp   string
	NewHelp    string
	SaveHelp   string
	DeleteHelp string
	QuitHelp   string

	EntryCount    string
	CurrentEntry  string
	DateLabel     string
	CommandPrompt string

	InvalidCommand string
	NoPrevious     string
	NoNext         string

	DatePrompt string
	DateRetry  string
	TextPrompt string

	Saved         string
	NothingToSave string

	ConfirmDelete     string
	Removed           string
	NoCurrentToDelete string

	LoadFailed string
	SaveFailed string
}

// English is the default locale.
var English = Locale{
	Prev:   "prev",
	Next:   "next",
	New:    "new",
	Save:   "save",
	Delete: "delete",
	Quit:   "quit",

	Terminator: "end-entry",
	Accept:     "y",

	Title:      "The diary understands the following commands:",
	PrevHelp:   "move to the previous entry",
	NextHelp:   "move to the next entry",
	NewHelp:    "write a new entry",
	SaveHelp:   "save the diary",
	DeleteHelp: "delete the current entry",
	QuitHelp:   "close the diary",

	EntryCount:    "Entries: %d",
	CurrentEntry:  "Current entry:",
	DateLabel:     "Date: %s",
	CommandPrompt: "Enter a command:",

	InvalidCommand: "Invalid command. Try again.",
	NoPrevious:     "There is no previous entry.",
	NoNext:         "There is no next entry.",

	DatePrompt: "Enter the date (DD.MM.YYYY):",
	DateRetry:  "Wrong format, try again (DD.MM.YYYY):",
	TextPrompt: "Enter the entry text (type '%s' on its own line to finish):",

	Saved:         "Entry saved.",
	NothingToSave: "There is no entry to save.",

	ConfirmDelete:     "Press '%s' to delete this entry, anything else to cancel.",
	Removed:           "Entry removed.",
	NoCurrentToDelete: "There is no current entry to delete.",

	LoadFailed: "Error loading entries: %v",
	SaveFailed: "Error saving: %v",
}

// Czech uses the command words of the first diary release.
var Czech = Locale{
	Prev:   "predchozi",
	Next:   "dalsi",
	New:    "novy",
	Save:   "uloz",
	Delete: "smaz",
	Quit:   "zavri",

	Terminator: "konec-diare",
	Accept:     "a",

	Title:      "Deník se ovládá následujícími příkazy:",
	PrevHelp:   "Přesunutí na předchozí záznam",
	NextHelp:   "Přesunutí na další záznam",
	NewHelp:    "Vytvoření nového záznamu",
	SaveHelp:   "Uložení vytvořeného záznamu",
	DeleteHelp: "Odstranění záznamu",
	QuitHelp:   "Zavření deníku",

	EntryCount:    "Počet záznamů: %d",
	CurrentEntry:  "Aktuální záznam:",
	DateLabel:     "Datum: %s",
	CommandPrompt: "Zadej příkaz:",

	InvalidCommand: "Neplatný příkaz. Zkus to znovu.",
	NoPrevious:     "Neexistuje předchozí záznam.",
	NoNext:         "Neexistuje následující záznam.",

	DatePrompt: "Zadej datum (DD.MM.RRRR):",
	DateRetry:  "Nesprávný formát, znovu (DD.MM.RRRR):",
	TextPrompt: "Zadej text záznamu (pro ukončení napiš '%s'):",

	Saved:         "Záznam uložen.",
	NothingToSave: "Neexistuje žádný záznam k uložení.",

	ConfirmDelete:     "Pro odstranění tohoto záznamu stiskni '%s', pro zrušení jiný znak.",
	Removed:           "Záznam odstraněn.",
	NoCurrentToDelete: "Neexistuje žádný aktuální záznam k odstranění.",

	LoadFailed: "Chyba při načítání záznamů: %v",
	SaveFailed: "Chyba při ukládání: %v",
}

var locales = map[string]Locale{
	"en": English,
	"cs": Czech,
}

// LookupLocale returns the named locale; an empty name means English.
func LookupLocale(name string) (Locale, error) {
	if name == "" {
		return English, nil
	}
	l, ok := locales[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(locales))
		for n := range locales {
			names = append(names, n)
		}
		sort.Strings(names)
		return Locale{}, fmt.Errorf("unknown locale %q (available: %s)", name, strings.Join(names, ", "))
	}
	return l, nil
}
