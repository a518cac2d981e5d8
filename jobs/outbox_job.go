package jobs

import (
	"log"

	"github.com/arjunkoirala/trekmandu/services"
)

func DispatchOutboxEmails() {
	log.Println("Running job: DispatchOutboxEmails...")
	services.DispatchDueEmails()
}
