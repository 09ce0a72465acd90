// Package content holds the card's copy. It is display data, not
// configuration.
package content

const Recipient = "Naimal"

const (
	LoadingTitle   = "Loading positivity for your special day"
	CountdownTitle = "Loading your birthday surprise in"
	CountdownHint  = "Get ready!"
	Headline       = "Happy Birthday Dear " + Recipient + " 🥳"
	OpenButton     = "Open Your Birthday Greeting Card"
	Footer         = "Created with love."
)

const (
	CardIcon    = "💌"
	CardHeading = "Happy Birthday Dear " + Recipient + " 🎂🥳"
	CardBody    = "Wishing the happiest of birthdays to the woman with the most beautiful heart. " +
		"May Allah grant you health, endless happiness, and success in everything you pursue this year and always. " +
		"I ask the Allah Almighty to bless you abundantly and keep you safe and shining."
	CardClosing = "Hope your day is as beautiful as your smile ✨"
	CardSignOff = "Love you always."
	CloseGlyph  = "×"
)

const (
	Balloon = "🎈"
	Heart   = "❤️"
	Party   = "🎉"
	Cake    = "🎂"
	Clock   = "⏰"
	Star    = "⭐"
	Gift    = "🎁"
	Sparkle = "✨"
	Partier = "🥳"
)

// CakeArt is the large cake on the main screen.
const CakeArt = `     i  i  i
    _|__|__|_
   |~~~~~~~~~|
  _|_________|_
 |~~~~~~~~~~~~~|
 |_____________|`
