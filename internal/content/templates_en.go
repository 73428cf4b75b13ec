package content

import "fmt"

// Английская nurture-последовательность: 8 писем на каждый тип личности.
// Структура последовательности едина для всех типов: отчет, проблема,
// почему привычные решения не работают, новый подход, как работает бот,
// история клиента, работа с возражением, финальный CTA.

var emotionalTraderEN = []TemplateFunc{
	// Письмо 1: сразу после квиза - доставка отчета
	func(firstName string) (string, string) {
		return fmt.Sprintf("Your Trading Personality Report is Here, %s! 🎭", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Your Trading Personality Report is ready!</p>
      <p>Based on your quiz responses, you're an <strong>EMOTIONAL TRADER</strong> 🎭</p>
      <p>This means your biggest enemy isn't the market&mdash;it's the emotions you bring to it. FOMO, fear, and impulsive decisions are costing you consistent profits.</p>
      <p>But here's the good news: this is one of the <strong>easiest problems to fix</strong> with the right system.</p>
      <ul>
        <li>Why you fall into the Emotional Trader category</li>
        <li>Your 4 biggest challenges and why they keep happening</li>
        <li>Your hidden strengths most traders don't have</li>
        <li>A 5-step improvement plan you can start TODAY</li>
      </ul>
      %s
      <p>Over the next two weeks I'll send you specific strategies, real stories from other emotional traders, and a solution that's helped hundreds of traders just like you.</p>
      <hr class="divider">
      <p>P.S. - Want to connect with other traders? <a href="%s">Join our community</a></p>
    `, firstName, ctaButton(pdfLink("emotional-trader", firstName), "Download Your Report (PDF)"), links.CommunityURL))
	},
	// Письмо 2: день 1 - настоящая проблема
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, here's why FOMO keeps destroying your account...", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Remember that trade where you saw a coin pumping, everyone on Twitter was talking about it, and you jumped in without a plan?</p>
      <p>No stop-loss. No strategy. No risk management. Just FOMO.</p>
      <blockquote>This isn't your fault.</blockquote>
      <p>Markets are DESIGNED to trigger these emotions. Pumps happen fast, creating urgency. Social media amplifies FOMO. Professional traders know this and profit from it.</p>
      <p>The traders who win consistently aren't more disciplined than you. They've just <strong>removed the opportunity for emotion to interfere</strong> with their trading.</p>
      <p>I'll show you exactly how they do it in my next email.</p>
      <p>Talk soon</p>
    `, firstName))
	},
	// Письмо 3: день 3 - почему дисциплина не работает
	func(firstName string) (string, string) {
		return "Why \"just be disciplined\" doesn't work for Emotional Traders", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Every trading book says the same thing: "Follow your rules." "Don't let emotions control you." "Be disciplined."</p>
      <p>Except it doesn't work. Discipline is a <strong>FINITE RESOURCE</strong>. It evaporates exactly when you need it: after three losses in a row, or when a coin is up 40%% and everyone's celebrating.</p>
      <p>You're fighting millions of years of evolution. Fear and greed are <strong>HARDWIRED</strong> into your brain.</p>
      <p>The traders who consistently win don't rely on discipline. They rely on <strong>SYSTEMS</strong> that make discipline irrelevant: alerts and limit orders instead of in-the-moment decisions, position sizes too small to trigger panic, or full automation with no human in the loop.</p>
      <p>More on that in my next email.</p>
    `, firstName))
	},
	// Письмо 4: день 5 - новый подход
	func(firstName string) (string, string) {
		return "How Emotional Traders are winning with automation", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Let me introduce you to Sarah. She's an Emotional Trader, just like you.</p>
      <p>Last year her account told a painful story: down $3,200 over 4 months. FOMO entries, revenge trading, panic selling winners.</p>
      <p>Then she stopped trying to "fix herself" and moved her strategy into an automated system. The rules she wrote calmly on a Sunday became the rules that executed on a volatile Tuesday&mdash;without her finger anywhere near the button.</p>
      <p>Six months later: consistent, boring, profitable.</p>
      <p>The insight isn't that Sarah became a different person. It's that her emotions <strong>stopped being part of the execution path</strong>.</p>
      <p>Tomorrow I'll show you what that looks like under the hood.</p>
    `, firstName))
	},
	// Письмо 5: день 7 - как работает бот
	func(firstName string) (string, string) {
		return "Behind the scenes: How our bot removes emotion from trading", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Here's what happens when a proven strategy runs automatically:</p>
      <ul>
        <li>Entries trigger on data conditions, never on hype</li>
        <li>Stop-losses are placed with the order and never moved in panic</li>
        <li>Profits are taken at the target, not when fear whispers "take it now"</li>
        <li>After a loss, the system just waits for the next valid setup&mdash;no revenge trades, ever</li>
      </ul>
      <p>You define the rules once, thinking clearly. The system executes them perfectly every time.</p>
      <p>That's the entire edge. Not a better indicator&mdash;a calmer execution layer.</p>
    `, firstName))
	},
	// Письмо 6: день 10 - история клиента
	func(firstName string) (string, string) {
		return "From Emotional Trader to Consistent Profits: Michael's Story", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Michael traded for three years. Smart guy, decent analysis, terrible results.</p>
      <blockquote>"I knew exactly what I was doing wrong while I was doing it. I just couldn't stop."</blockquote>
      <p>Sound familiar? That sentence is the Emotional Trader experience in one line.</p>
      <p>Michael's turning point wasn't a new course or a new indicator. It was admitting that in the moment, he would always lose to his own adrenaline&mdash;and delegating the moment to a machine.</p>
      <p>First profitable quarter in three years. Not because the strategy changed. Because the execution did.</p>
    `, firstName))
	},
	// Письмо 7: день 14 - работа с возражением
	func(firstName string) (string, string) {
		return "\"Is automated trading really safe?\" Here's the honest truth...", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Fair question. Here's the honest answer:</p>
      <p>Automation is not magic. A bad strategy automated is still a bad strategy&mdash;just faster. What automation removes is the <em>execution gap</em>: the difference between what your plan says and what your hands do.</p>
      <p>For an Emotional Trader, that gap is where most of the money disappears.</p>
      <p>You stay in control: you set the risk limits, you choose the strategy, you can stop it any time. The bot just never gets scared, greedy, or bored.</p>
    `, firstName))
	},
	// Письмо 8: день 17 - финальный CTA
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, let's fix your Emotional Trading problem", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Over the last two weeks you've seen why emotions&mdash;not knowledge&mdash;are the real leak in your trading, and how traders like Sarah and Michael fixed it.</p>
      <p>Now it's your turn. One decision, made once, while you're calm:</p>
      %s
      <p>Keep trading on feelings, or let a system execute your plan exactly as written. You already know which one your account prefers.</p>
      <p>Talk soon</p>
    `, firstName, ctaButton(links.BaseURL, "Remove Emotion From Your Trading")))
	},
}

var timeStarvedTraderEN = []TemplateFunc{
	func(firstName string) (string, string) {
		return fmt.Sprintf("Your Trading Personality Report is Here, %s! ⏰", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Your Trading Personality Report is ready!</p>
      <p>Based on your quiz responses, you're a <strong>TIME-STARVED TRADER</strong> ⏰</p>
      <p>Your biggest problem isn't skill&mdash;it's that the market doesn't wait for your calendar. Setups appear while you're in meetings, and the best moves happen while you sleep.</p>
      <p>Your detailed report covers your challenges, your hidden advantages, and a concrete plan for trading around a full life.</p>
      %s
      <hr class="divider">
      <p>P.S. - Want to connect with other traders? <a href="%s">Join our community</a></p>
    `, firstName, ctaButton(pdfLink("time-starved-trader", firstName), "Download Your Report (PDF)"), links.CommunityURL))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, how many moves did you miss this week while working?", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Be honest: how many good setups did you watch from your phone this week, unable to act?</p>
      <p>The market's best opportunities don't schedule themselves around your job, your family, or your time zone. They happen at 3am. They happen during your Monday standup.</p>
      <p>For a Time-Starved Trader, the painful math is simple: your edge is real, but your <strong>availability</strong> is the bottleneck.</p>
      <p>There's a way to disconnect the two. More in my next email.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Why \"setting alerts\" isn't enough for Time-Starved Traders", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>You've probably tried the obvious fix: price alerts.</p>
      <p>And you've learned the hard way that an alert at 3:47am is just a notification you read at 7:30am&mdash;four hours after the entry was gone.</p>
      <p>Alerts tell you something happened. They don't <strong>act</strong>. By the time you can respond, the asymmetry that made the setup attractive has evaporated.</p>
      <p>What you need isn't better information delivery. It's execution that doesn't require you to be awake.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "How Time-Starved Traders are finally catching the moves they miss", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Meet David: engineer, two kids, 50-hour weeks. A classic Time-Starved Trader.</p>
      <p>His strategy was fine. His results weren't, because he could only trade two evenings a week.</p>
      <p>David moved his rules into an automated system that watches the market 24/7 and executes exactly what he would have done&mdash;if he'd been there.</p>
      <p>Nothing about his life changed. Everything about his fill rate did.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Here's how our bot trades while you sleep, work, and live your life", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Under the hood it's simple:</p>
      <ul>
        <li>The system monitors the market around the clock&mdash;no coffee required</li>
        <li>When your conditions are met, it enters with your size and your stop</li>
        <li>Exits happen at your targets, whether it's 2pm or 4am</li>
        <li>You review a clean log over breakfast instead of staring at charts all day</li>
      </ul>
      <p>Your strategy, your risk, your rules&mdash;just without the requirement that you personally witness every candle.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "\"I finally stopped missing moves\" - A Time-Starved Trader's story", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <blockquote>"The worst part wasn't losing money. It was watching the trades I <em>would</em> have won disappear while I was in a meeting."</blockquote>
      <p>That's Anna, a project manager who traded around her job for two years.</p>
      <p>After automating, her win rate barely changed. Her <strong>number of trades taken</strong> tripled&mdash;because the system caught every setup, not just the ones that politely occurred between 7 and 10pm.</p>
      <p>Same edge. Full coverage. That's the whole story.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "\"But I want to be a real trader...\" Here's the truth", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Some traders worry automation makes them "not a real trader."</p>
      <p>Here's the truth: the real work of trading is strategy, risk management, and review. Clicking the buy button at the right millisecond is the <em>least</em> skilled part of the job&mdash;which is exactly why it's the part worth delegating.</p>
      <p>Portfolio managers don't personally run to the exchange floor. You shouldn't have to skip lunch for an entry.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, stop missing moves. Here's your next step.", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Two weeks ago you learned you're a Time-Starved Trader. Since then you've seen why alerts don't cut it and how traders like David and Anna stopped choosing between their life and their entries.</p>
      %s
      <p>Your time stays yours. The market gets watched anyway.</p>
    `, firstName, ctaButton(links.BaseURL, "Let the Bot Watch the Market")))
	},
}

var inconsistentExecutorEN = []TemplateFunc{
	func(firstName string) (string, string) {
		return fmt.Sprintf("Your Trading Personality Report is Here, %s! ⚡", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Your Trading Personality Report is ready!</p>
      <p>Based on your quiz responses, you're an <strong>INCONSISTENT EXECUTOR</strong> ⚡</p>
      <p>You already know what to do. You have a plan, maybe even a good one. The gap is between the plan and your hands in the moment.</p>
      <p>Your report breaks down why that gap exists, the strengths you're sitting on, and a step-by-step path to execution you can actually keep.</p>
      %s
      <hr class="divider">
      <p>P.S. - Want to connect with other traders? <a href="%s">Join our community</a></p>
    `, firstName, ctaButton(pdfLink("inconsistent-executor", firstName), "Download Your Report (PDF)"), links.CommunityURL))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, the gap between what you know and what you do is costing you...", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>You know the feeling. The plan says "wait for confirmation." You enter early anyway.</p>
      <p>The plan says "stop at -2%%." You move it, just this once.</p>
      <p>An Inconsistent Executor doesn't lose because of bad analysis. You lose in the <strong>ten seconds between knowing and doing</strong>.</p>
      <p>Every backtest of your own rules would beat your actual account. Let that sink in&mdash;then read my next email.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Why willpower always fails for Inconsistent Executors", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>You've tried promising yourself you'll follow the plan this time. How's that working?</p>
      <p>Willpower is a battery, and the market is engineered to drain it. Every red candle, every near-miss, every "it's different this time" takes a charge.</p>
      <p>By the third deviation of the week you're not weak&mdash;you're <strong>empty</strong>.</p>
      <p>The fix isn't a stronger battery. It's removing the decisions that drain it.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "The Inconsistent Executor's secret weapon: removing yourself from the equation", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Here's the paradox: your rules are good, and you are the only thing standing between them and profit.</p>
      <p>The best Inconsistent Executors stop trying to become someone else. They take the plan they already wrote and hand the execution to a system that cannot improvise.</p>
      <p>The plan finally gets tested as written&mdash;for many traders, the first time ever.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "How our bot executes your strategy with 100% consistency", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>What perfect execution looks like:</p>
      <ul>
        <li>Entry rules checked the same way, every single time</li>
        <li>Stops placed with the order and never negotiated with</li>
        <li>Position sizing computed, not guessed</li>
        <li>No "just this once"&mdash;the system doesn't know that phrase</li>
      </ul>
      <p>Your strategy already deserves this. You just can't give it by hand, and that's fine&mdash;nobody can, forever.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "\"I stopped fighting myself and started winning\" - An Executor's story", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <blockquote>"My trading journal was just a list of apologies to my own strategy."</blockquote>
      <p>That's Tom. Four years of trading, a genuinely solid system, and a discipline problem he could never out-promise.</p>
      <p>He automated the exact rules from his journal. No edits. Three months later the system had done what he couldn't: followed the plan 100%% of the time.</p>
      <p>The plan was profitable. It always had been. The executor was the leak.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "\"Am I giving up on becoming a better trader?\" No. Here's why.", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Automating execution isn't giving up&mdash;it's a division of labor.</p>
      <p>You still do the trader's real job: building the strategy, setting the risk, reviewing results, improving the rules. The system does the part evolution didn't build you for: repeating the same action identically, forever, under stress.</p>
      <p>You become <em>more</em> of a trader, not less. Just one whose plan actually happens.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, perfect execution is one step away", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>You've had the right plan for a while. For two weeks I've shown you why it keeps failing anyway&mdash;and what traders like Tom did about it.</p>
      %s
      <p>Write the rules once. Watch them finally get followed.</p>
    `, firstName, ctaButton(links.BaseURL, "Get 100% Consistent Execution")))
	},
}

var overwhelmedAnalystEN = []TemplateFunc{
	func(firstName string) (string, string) {
		return fmt.Sprintf("Your Trading Personality Report is Here, %s! 📊", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Your Trading Personality Report is ready!</p>
      <p>Based on your quiz responses, you're an <strong>OVERWHELMED ANALYST</strong> 📊</p>
      <p>Your problem isn't too little information&mdash;it's too much. Twenty indicators, fifteen YouTube channels, and the entry you never take because one more confirmation might help.</p>
      <p>Your report explains the paralysis, the analytical strengths underneath it, and a plan for turning research into decisions.</p>
      %s
      <hr class="divider">
      <p>P.S. - Want to connect with other traders? <a href="%s">Join our community</a></p>
    `, firstName, ctaButton(pdfLink("overwhelmed-analyst", firstName), "Download Your Report (PDF)"), links.CommunityURL))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, your 20 indicators are making you WORSE at trading...", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Count the indicators on your main chart right now. Be honest.</p>
      <p>Every one of them promised clarity. Together they deliver the opposite: for any trade idea, at least one indicator disagrees&mdash;so you wait, and the move leaves without you.</p>
      <p>This is analysis paralysis, and for an Overwhelmed Analyst it's the single biggest profit leak. Not bad calls. <strong>No calls.</strong></p>
      <p>More on where it comes from in my next email.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Why consuming more trading content is making you poorer", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Another course. Another thread. Another "one weird indicator." It feels like progress&mdash;it's procrastination with charts.</p>
      <p>Here's the uncomfortable truth: past a small threshold, more information <strong>lowers</strong> decision quality. Each new input adds a veto, and a trade with twelve vetoes never happens.</p>
      <p>Profitable traders run shockingly simple systems. Two or three inputs. Clear invalidation. Taken every time.</p>
      <p>Simple, executed, beats sophisticated, contemplated.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "How Overwhelmed Analysts found clarity through automation", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Meet Elena: spreadsheet queen, indicator collector, zero trades in her last profitable setup window.</p>
      <p>Her fix was radical: she distilled everything she knew into one rule set, automated it, and deleted the rest.</p>
      <p>The system doesn't read Twitter. It doesn't wait for an eleventh confirmation. It checks her conditions and acts.</p>
      <p>Her analysis finally produces trades instead of tabs.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Zero indicators needed: How our bot trades with pure objectivity", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>What objective execution looks like:</p>
      <ul>
        <li>A fixed, finite rule set&mdash;no scrolling for one more opinion</li>
        <li>Conditions are either met or not; there is no "hmm"</li>
        <li>Entries, stops, and targets computed from data, not mood</li>
        <li>Every decision logged, so your analytical brain gets something real to review</li>
      </ul>
      <p>You bring the rigor. The system brings the verdict. Nobody brings the 20 indicators.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "\"I deleted all my indicators and tripled my returns\" - Alex's story", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <blockquote>"I knew more about the market than anyone I traded with. They all made more money than me."</blockquote>
      <p>Alex spent three years studying and eleven months without taking a single trade he was happy with.</p>
      <p>He automated a three-rule system&mdash;embarrassingly simple by his standards. It took every setup he would have agonized over.</p>
      <p>A year later: triple the returns of his best analysis year. Knowledge finally converted into positions.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "\"But I LIKE analyzing...\" Here's why that's holding you back", wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Good news: you don't have to stop analyzing. You have to stop analyzing <em>at the moment of execution</em>.</p>
      <p>Research belongs in the lab: weekends, backtests, reviews. That's where your analytical edge compounds.</p>
      <p>At the moment of entry, analysis is just hesitation wearing a lab coat.</p>
      <p>Split the two and both get better: deeper research, faster execution.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, clarity is one decision away", firstName), wrap(fmt.Sprintf(`
      <p>Hey %s,</p>
      <p>Two weeks of emails, one message: your knowledge isn't the problem, the missing verdict is.</p>
      <p>Distill what you know into rules once. Let a system deliver the verdicts from now on.</p>
      %s
      <p>Your charts will look emptier. Your account won't.</p>
    `, firstName, ctaButton(links.BaseURL, "Turn Analysis Into Action")))
	},
}
