package telegram

const (
	commonErrorInternal = "Something went wrong on our side, please try again."

	messageHelp = `❓ <b>Trading Journal Bot</b>

The bot reads the journal you keep in the web app and summarises it here.

🤖 <b>Commands:</b>
/start - Register and show this message
/report - Performance metrics for all recorded trades
/balance - Account balance after realised P&amp;L
/calendar [YYYY-MM] - Traded days of a month, current month by default
/events [high|medium|low] - Upcoming economic events
/link &lt;journal-id&gt; - Read a different journal id
/help - Show this message

💡 Open the bot with <code>/start your-journal-id</code> to link it right away.`

	messageNoTrades = `📭 <b>No trades yet</b>

Record trades in the journal first, then come back to /report.`
)
