package flash

// Config carries the flashcard database settings read from the environment.
// Decks live in their own database, separate from accounts.
type Config struct {
	DatabaseURL string `env:"FLASH_DATABASE_URL,required"`
}
