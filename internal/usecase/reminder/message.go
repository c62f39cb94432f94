package reminder

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	greetings = []string{"Hola", "Buenas", "Saludos"}
	closings  = []string{"Te esperamos!", "Nos vemos mañana.", "Un saludo!", "Gracias!"}

	confirmationGreetings = []string{"Hola", "Buenas", "Estimado/a"}
	confirmationClosings  = []string{
		"Gracias y hasta pronto!", "Nos vemos pronto!", "Gracias por confiar en nosotros.", "Un saludo!",
	}

	weekdaysES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	monthsES   = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

// LongDate formats t like "miércoles, 8 de enero".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s", weekdaysES[t.Weekday()], t.Day(), monthsES[t.Month()-1])
}

// FirstName returns the first word of name with only its first letter upper
// case.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	word := strings.ToLower(fields[0])
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

// Message builds the reminder text. pick chooses an index in [0, n) for the
// greeting and the closing.
func Message(
	pick func(n int) int,
	clientName string,
	date string,
	clock string,
	stylistName string,
) string {
	greeting := greetings[pick(len(greetings))]
	closing := closings[pick(len(closings))]

	return fmt.Sprintf(
		"%s %s, te recordamos tu cita para mañana:\n\n📅 %s\n⏰ %s\n💇 Con %s\n\n%s",
		greeting, FirstName(clientName), date, clock, stylistName, closing,
	)
}

// ConfirmationMessage builds the text sent when a booking is created.
// followUp announces the reminder that goes out the day before; it is only
// wanted when the appointment is after tomorrow.
func ConfirmationMessage(
	pick func(n int) int,
	clientName string,
	date string,
	clock string,
	stylistName string,
	followUp bool,
) string {
	greeting := confirmationGreetings[pick(len(confirmationGreetings))]
	closing := confirmationClosings[pick(len(confirmationClosings))]

	name := FirstName(clientName)
	if name == "" {
		name = unnamedClient
	}

	var note string
	if followUp {
		note = "\n\nTe enviaremos otro recordatorio el día previo a su cita."
	}

	return fmt.Sprintf(
		"%s %s, hemos creado tu cita:\n\n📅 %s a las ⏰ %s con %s.%s\n\n%s",
		greeting, name, date, clock, stylistName, note, closing,
	)
}
