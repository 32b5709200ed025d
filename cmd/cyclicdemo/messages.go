package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgExperiment    = "Experiment %d\n"
	msgParameters    = "Hamming bound: n = %d, p = %d for k = %d; code %s\n"
	msgMessage       = "Message:              %s\n"
	msgMessagePoly   = "G(x): %s\n"
	msgGenerator     = "P(x): %s\n"
	msgCodeword      = "F(x): %s\n"
	msgCodewordBits  = "F(x) in binary:       %s\n"
	msgCorrupted     = "Word with error:      %s\n"
	msgDetected      = "Detected error index: %d\n"
	msgCorrected     = "Corrected word:       %s\n"
	msgNoError       = "No error detected.\n"
	msgUncorrectable = "Error not found in the table (syndrome %s).\n"
	msgTableTitle    = "Syndrome table (%d entries, %d collisions):\n"
	msgSummary       = "%d of %d runs corrected.\n"
	msgPosition      = "Position"
	msgSyndrome      = "Syndrome"
	msgRemainder     = "Remainder"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

func init() {
	ru := map[string]string{
		msgExperiment:    "Эксперимент %d\n",
		msgParameters:    "Граница Хэмминга: n = %d, p = %d при k = %d; код %s\n",
		msgMessage:       "Исходный код:         %s\n",
		msgMessagePoly:   "G(x): %s\n",
		msgGenerator:     "P(x): %s\n",
		msgCodeword:      "F(x): %s\n",
		msgCodewordBits:  "F(x) в двоичном виде: %s\n",
		msgCorrupted:     "Код с ошибкой:        %s\n",
		msgDetected:      "Обнаруженный индекс ошибки: %d\n",
		msgCorrected:     "Исправленный код:     %s\n",
		msgNoError:       "Ошибка не обнаружена.\n",
		msgUncorrectable: "Ошибка не обнаружена в таблице (остаток %s).\n",
		msgTableTitle:    "Таблица остатков (%d записей, %d коллизий):\n",
		msgSummary:       "Исправлено %d из %d экспериментов.\n",
		msgPosition:      "Позиция",
		msgSyndrome:      "Остаток",
		msgRemainder:     "Многочлен",
	}
	for key, msg := range ru {
		if err := message.SetString(language.Russian, key, msg); err != nil {
			panic(err)
		}
	}
}

// newPrinter returns a printer for the closest supported language.
func newPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, index, _ := matcher.Match(tag)
	return message.NewPrinter(supported[index])
}
