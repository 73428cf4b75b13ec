package content

import "fmt"

// Русская nurture-последовательность. Структура повторяет английскую:
// отчет, проблема, почему привычные решения не работают, новый подход,
// как работает бот, история клиента, возражение, финальный CTA.

var emotionalTraderRU = []TemplateFunc{
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, ваш отчет о торговой личности готов! 🎭", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Ваш персональный отчет готов.</p>
      <p>По результатам квиза вы &mdash; <strong>ЭМОЦИОНАЛЬНЫЙ ТРЕЙДЕР</strong> 🎭</p>
      <p>Ваш главный противник &mdash; не рынок, а эмоции, которые вы приносите на рынок. FOMO, страх и импульсивные решения лишают вас стабильной прибыли.</p>
      <p>Хорошая новость: с правильной системой это одна из <strong>самых решаемых проблем</strong> в трейдинге.</p>
      %s
      <p>В ближайшие две недели я пришлю вам конкретные стратегии и реальные истории трейдеров, которые справились с той же проблемой.</p>
      <hr class="divider">
      <p>P.S. Хотите общаться с другими трейдерами? <a href="%s">Вступайте в наше сообщество</a></p>
    `, firstName, ctaButton(pdfLink("emotional-trader", firstName), "Скачать отчет (PDF)"), links.CommunityURL))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, вот почему FOMO раз за разом сжигает ваш депозит...", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Вспомните сделку, когда монета летела вверх, все вокруг кричали о ней &mdash; и вы вошли без плана. Без стопа. Без риск-менеджмента.</p>
      <blockquote>Это не ваша вина.</blockquote>
      <p>Рынки устроены так, чтобы вызывать эти эмоции. Пампы создают срочность, соцсети усиливают FOMO, а профессионалы на этом зарабатывают.</p>
      <p>Стабильно зарабатывающие трейдеры не дисциплинированнее вас. Они просто <strong>убрали у эмоций возможность вмешиваться</strong> в исполнение.</p>
      <p>Как именно &mdash; в следующем письме.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Почему «просто будь дисциплинированным» не работает", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Каждая книга о трейдинге повторяет: «следуй правилам», «не поддавайся эмоциям», «будь дисциплинированным».</p>
      <p>Но дисциплина &mdash; <strong>исчерпаемый ресурс</strong>. Она испаряется ровно тогда, когда нужна: после трех убытков подряд или когда монета растет на 40%%.</p>
      <p>Вы боретесь с миллионами лет эволюции: страх и жадность зашиты в мозг.</p>
      <p>Побеждают не те, кто сильнее терпит, а те, кто строит <strong>системы</strong>, при которых терпеть ничего не нужно.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Как эмоциональные трейдеры выигрывают с автоматизацией", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Познакомьтесь с Сарой. Такой же эмоциональный трейдер, как вы: минус $3200 за четыре месяца, входы на FOMO, отыгрыши, панические продажи.</p>
      <p>Она перестала «чинить себя» и перенесла стратегию в автоматическую систему. Правила, спокойно записанные в воскресенье, исполнялись в волатильный вторник &mdash; без ее участия.</p>
      <p>Полгода спустя: стабильно, скучно, прибыльно.</p>
      <p>Сара не стала другим человеком. Просто ее эмоции <strong>перестали участвовать в исполнении</strong>.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Как именно бот убирает эмоции из трейдинга", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Вот что происходит, когда стратегия исполняется автоматически:</p>
      <ul>
        <li>Входы срабатывают по данным, а не по хайпу</li>
        <li>Стоп ставится вместе с ордером и никогда не двигается в панике</li>
        <li>Прибыль фиксируется по цели, а не когда страх шепчет «забирай»</li>
        <li>После убытка система просто ждет следующий сетап &mdash; никаких отыгрышей</li>
      </ul>
      <p>Вы один раз задаете правила на холодную голову. Система исполняет их идеально каждый раз.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "От эмоций к стабильной прибыли: история Михаила", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <blockquote>«Я точно знал, что делаю не так, прямо в момент, когда это делал. И не мог остановиться.»</blockquote>
      <p>Это Михаил. Три года торговли, неплохой анализ, ужасные результаты.</p>
      <p>Перелом случился не после нового курса и не после нового индикатора. Он признал, что в моменте всегда проиграет собственному адреналину &mdash; и отдал момент машине.</p>
      <p>Первый прибыльный квартал за три года. Стратегия не изменилась. Изменилось исполнение.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "«А это вообще безопасно &mdash; автоматическая торговля?» Честный ответ", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Честный ответ: автоматизация &mdash; не магия. Плохая стратегия на автомате остается плохой, просто быстрее.</p>
      <p>Автоматизация убирает <em>разрыв исполнения</em> &mdash; разницу между тем, что написано в плане, и тем, что делают руки. Для эмоционального трейдера именно в этом разрыве исчезают деньги.</p>
      <p>Контроль остается у вас: вы задаете лимиты риска, выбираете стратегию и можете все остановить в любой момент. Бот лишь никогда не боится, не жадничает и не скучает.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, пора решить проблему эмоциональной торговли", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>За две недели вы увидели: утечка не в знаниях, а в эмоциях &mdash; и как трейдеры вроде Сары и Михаила ее закрыли.</p>
      <p>Теперь ваш ход. Одно решение, принятое один раз, на спокойную голову:</p>
      %s
      <p>Продолжать торговать на чувствах &mdash; или дать системе исполнять план так, как он написан. Ваш депозит уже знает правильный ответ.</p>
    `, firstName, ctaButton(links.BaseURL, "Убрать эмоции из торговли")))
	},
}

var timeStarvedTraderRU = []TemplateFunc{
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, ваш отчет о торговой личности готов! ⏰", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Ваш персональный отчет готов.</p>
      <p>По результатам квиза вы &mdash; <strong>ТРЕЙДЕР БЕЗ ВРЕМЕНИ</strong> ⏰</p>
      <p>Проблема не в навыках: рынок просто не подстраивается под ваш календарь. Сетапы появляются во время совещаний, а лучшие движения происходят, пока вы спите.</p>
      %s
      <hr class="divider">
      <p>P.S. Хотите общаться с другими трейдерами? <a href="%s">Вступайте в наше сообщество</a></p>
    `, firstName, ctaButton(pdfLink("time-starved-trader", firstName), "Скачать отчет (PDF)"), links.CommunityURL))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, сколько движений вы упустили на этой неделе из-за работы?", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Честно: сколько хороших сетапов вы на этой неделе просто наблюдали с телефона, не имея возможности войти?</p>
      <p>Лучшие возможности рынка не согласуются с вашей работой, семьей и часовым поясом. Они случаются в 3 часа ночи и посреди понедельничного созвона.</p>
      <p>Математика жестока: ваше преимущество реально, но узкое место &mdash; <strong>ваша доступность</strong>.</p>
      <p>Эти две вещи можно разделить. Об этом &mdash; в следующем письме.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Почему «поставить алерты» не спасает трейдера без времени", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Вы наверняка пробовали очевидное решение &mdash; ценовые алерты.</p>
      <p>И выучили на своем опыте: алерт в 3:47 ночи &mdash; это просто уведомление, которое вы прочитаете в 7:30 утра, через четыре часа после ушедшей точки входа.</p>
      <p>Алерты сообщают, что что-то произошло. Они не <strong>действуют</strong>.</p>
      <p>Вам нужна не более быстрая доставка информации, а исполнение, которому не требуется, чтобы вы бодрствовали.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Как трейдеры без времени перестали упускать движения", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Знакомьтесь: Давид. Инженер, двое детей, 50-часовая рабочая неделя.</p>
      <p>Стратегия у него была нормальная. Результаты &mdash; нет, потому что торговать он мог два вечера в неделю.</p>
      <p>Давид перенес свои правила в автоматическую систему, которая следит за рынком 24/7 и делает ровно то, что сделал бы он сам &mdash; если бы был у экрана.</p>
      <p>Его жизнь не изменилась. Изменилось количество взятых сетапов.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Вот как бот торгует, пока вы спите, работаете и живете", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Внутри все просто:</p>
      <ul>
        <li>Система следит за рынком круглосуточно</li>
        <li>Когда условия выполнены &mdash; входит с вашим объемом и вашим стопом</li>
        <li>Выходы по вашим целям, хоть в 14:00, хоть в 4 утра</li>
        <li>Утром вы просматриваете аккуратный журнал вместо целого дня у графиков</li>
      </ul>
      <p>Ваша стратегия, ваш риск, ваши правила &mdash; без обязанности лично видеть каждую свечу.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "«Я наконец перестала упускать движения» &mdash; история Анны", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <blockquote>«Хуже всего были не убытки. Хуже всего было смотреть, как сделки, которые я <em>выиграла бы</em>, исчезают, пока я на совещании.»</blockquote>
      <p>Это Анна, проджект-менеджер, два года торговавшая в обход работы.</p>
      <p>После автоматизации ее винрейт почти не изменился. Зато <strong>количество взятых сделок</strong> выросло втрое: система ловила каждый сетап, а не только те, что вежливо случались между 19:00 и 22:00.</p>
      <p>То же преимущество. Полное покрытие. Вот и вся история.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "«Но я хочу быть настоящим трейдером...» Вот правда", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Некоторые боятся, что автоматизация делает их «ненастоящими трейдерами».</p>
      <p>Правда в том, что настоящая работа трейдера &mdash; стратегия, риск-менеджмент и разбор результатов. Нажать кнопку в нужную миллисекунду &mdash; <em>наименее</em> квалифицированная часть профессии. Именно поэтому ее и стоит делегировать.</p>
      <p>Управляющие фондами не бегают лично в зал биржи. Вам тоже не обязательно пропускать обед ради входа.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, хватит упускать движения. Вот ваш следующий шаг", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Две недели назад вы узнали, что вы &mdash; трейдер без времени. С тех пор вы увидели, почему алерты не спасают и как Давид и Анна перестали выбирать между жизнью и точками входа.</p>
      %s
      <p>Ваше время остается вашим. За рынком все равно будут следить.</p>
    `, firstName, ctaButton(links.BaseURL, "Доверить боту наблюдение за рынком")))
	},
}

var inconsistentExecutorRU = []TemplateFunc{
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, ваш отчет о торговой личности готов! ⚡", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Ваш персональный отчет готов.</p>
      <p>По результатам квиза вы &mdash; <strong>НЕПОСЛЕДОВАТЕЛЬНЫЙ ИСПОЛНИТЕЛЬ</strong> ⚡</p>
      <p>Вы уже знаете, что делать. У вас есть план, возможно даже хороший. Разрыв &mdash; между планом и вашими руками в моменте.</p>
      %s
      <hr class="divider">
      <p>P.S. Хотите общаться с другими трейдерами? <a href="%s">Вступайте в наше сообщество</a></p>
    `, firstName, ctaButton(pdfLink("inconsistent-executor", firstName), "Скачать отчет (PDF)"), links.CommunityURL))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, разрыв между «знаю» и «делаю» стоит вам денег...", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Знакомое чувство. План говорит «жди подтверждения» &mdash; вы входите раньше.</p>
      <p>План говорит «стоп на -2%%» &mdash; вы его двигаете, ну один разочек.</p>
      <p>Непоследовательный исполнитель теряет не из-за плохого анализа. Вы теряете в <strong>десяти секундах между «знаю» и «делаю»</strong>.</p>
      <p>Любой бэктест ваших собственных правил обыграл бы ваш реальный счет. Подумайте об этом &mdash; и читайте следующее письмо.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Почему сила воли всегда подводит непоследовательных исполнителей", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Вы уже обещали себе, что в этот раз будете следовать плану. Как успехи?</p>
      <p>Сила воли &mdash; батарейка, а рынок спроектирован ее разряжать. Каждая красная свеча, каждый почти-вход, каждое «сейчас все иначе» снимает заряд.</p>
      <p>К третьему отступлению за неделю вы не слабый. Вы <strong>разряженный</strong>.</p>
      <p>Решение &mdash; не батарейка побольше, а удаление решений, которые ее разряжают.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Секретное оружие исполнителя: убрать себя из уравнения", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Парадокс: ваши правила хороши, и единственное, что стоит между ними и прибылью &mdash; это вы.</p>
      <p>Лучшие из непоследовательных исполнителей перестают пытаться стать кем-то другим. Они берут уже написанный план и отдают исполнение системе, которая не умеет импровизировать.</p>
      <p>План наконец проверяется в том виде, в каком написан. Для многих &mdash; впервые.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Как бот исполняет вашу стратегию со 100%-ной последовательностью", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Как выглядит идеальное исполнение:</p>
      <ul>
        <li>Условия входа проверяются одинаково, каждый раз</li>
        <li>Стоп ставится вместе с ордером, и с ним никто не торгуется</li>
        <li>Размер позиции считается, а не угадывается</li>
        <li>Никаких «ну один разочек» &mdash; система не знает этой фразы</li>
      </ul>
      <p>Ваша стратегия уже заслуживает такого исполнения. Руками его не дать никому &mdash; и это нормально.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "«Я перестал воевать с собой и начал зарабатывать» &mdash; история Тома", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <blockquote>«Мой торговый журнал был просто списком извинений перед собственной стратегией.»</blockquote>
      <p>Это Том. Четыре года торговли, действительно крепкая система и проблема с дисциплиной, которую нельзя перехитрить обещаниями.</p>
      <p>Он автоматизировал правила из журнала. Без правок. Через три месяца система сделала то, что не удавалось ему: следовала плану в 100%% случаев.</p>
      <p>План был прибыльным. Он всегда был прибыльным. Утечкой был исполнитель.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "«Я что, сдаюсь как трейдер?» Нет. И вот почему", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Автоматизация исполнения &mdash; не капитуляция, а разделение труда.</p>
      <p>Вы по-прежнему делаете настоящую работу трейдера: строите стратегию, задаете риск, разбираете результаты, улучшаете правила. Система делает то, к чему эволюция вас не готовила: повторяет одно и то же действие одинаково, вечно, под стрессом.</p>
      <p>Вы становитесь <em>больше</em> трейдером, а не меньше. Просто теперь ваш план действительно происходит.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, до идеального исполнения один шаг", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Правильный план у вас давно есть. Две недели я показывал, почему он все равно срывается &mdash; и что с этим сделали трейдеры вроде Тома.</p>
      %s
      <p>Напишите правила один раз. Посмотрите, как им наконец следуют.</p>
    `, firstName, ctaButton(links.BaseURL, "Получить стопроцентное исполнение")))
	},
}

var overwhelmedAnalystRU = []TemplateFunc{
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, ваш отчет о торговой личности готов! 📊", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Ваш персональный отчет готов.</p>
      <p>По результатам квиза вы &mdash; <strong>ПЕРЕГРУЖЕННЫЙ АНАЛИТИК</strong> 📊</p>
      <p>Ваша проблема не в нехватке информации, а в ее избытке. Двадцать индикаторов, пятнадцать каналов &mdash; и вход, который вы так и не взяли, потому что «еще одно подтверждение не помешает».</p>
      %s
      <hr class="divider">
      <p>P.S. Хотите общаться с другими трейдерами? <a href="%s">Вступайте в наше сообщество</a></p>
    `, firstName, ctaButton(pdfLink("overwhelmed-analyst", firstName), "Скачать отчет (PDF)"), links.CommunityURL))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, ваши 20 индикаторов делают вашу торговлю ХУЖЕ...", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Посчитайте индикаторы на вашем основном графике. Честно.</p>
      <p>Каждый обещал ясность. Вместе они дают обратное: на любую идею хотя бы один индикатор возражает &mdash; вы ждете, и движение уходит без вас.</p>
      <p>Это аналитический паралич, и для перегруженного аналитика это главная утечка прибыли. Не плохие решения. <strong>Отсутствие решений.</strong></p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Почему поток обучающего контента делает вас беднее", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Еще один курс. Еще один тред. Еще один «секретный индикатор». Ощущается как прогресс &mdash; а является прокрастинацией с графиками.</p>
      <p>Неудобная правда: после небольшого порога дополнительная информация <strong>снижает</strong> качество решений. Каждый новый вход добавляет право вето, а сделка с двенадцатью вето не случается никогда.</p>
      <p>Прибыльные трейдеры работают на удивительно простых системах: два-три входа, ясная инвалидация, исполнение каждый раз.</p>
      <p>Простое и исполненное бьет сложное и обдуманное.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Как перегруженные аналитики нашли ясность в автоматизации", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Знакомьтесь: Елена. Королева таблиц, коллекционер индикаторов, ноль сделок за последнее прибыльное окно ее же сетапа.</p>
      <p>Ее решение оказалось радикальным: выжать все, что она знает, в один набор правил, автоматизировать его &mdash; и удалить остальное.</p>
      <p>Система не читает Twitter и не ждет одиннадцатого подтверждения. Она проверяет условия и действует.</p>
      <p>Ее анализ наконец производит сделки, а не вкладки.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "Ноль индикаторов: как бот торгует с чистой объективностью", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Как выглядит объективное исполнение:</p>
      <ul>
        <li>Фиксированный конечный набор правил &mdash; без поиска «еще одного мнения»</li>
        <li>Условия либо выполнены, либо нет; варианта «хм» не существует</li>
        <li>Входы, стопы и цели считаются из данных, а не из настроения</li>
        <li>Каждое решение пишется в журнал &mdash; вашему аналитическому мозгу будет что разобрать</li>
      </ul>
      <p>С вас &mdash; строгость. С системы &mdash; вердикт. Двадцать индикаторов не нужны никому.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "«Я удалил все индикаторы и утроил доходность» &mdash; история Алекса", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <blockquote>«Я знал о рынке больше всех, с кем торговал. Все они зарабатывали больше меня.»</blockquote>
      <p>Алекс три года учился и одиннадцать месяцев не взял ни одной сделки, которой был бы доволен.</p>
      <p>Он автоматизировал систему из трех правил &mdash; по его меркам до неприличия простую. Она взяла каждый сетап, над которым он бы мучился.</p>
      <p>Через год: доходность втрое выше лучшего «аналитического» года. Знания наконец превратились в позиции.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return "«Но мне НРАВИТСЯ анализировать...» Вот что вас держит", wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Хорошая новость: анализировать можно продолжать. Нельзя анализировать <em>в момент исполнения</em>.</p>
      <p>Исследованиям место в лаборатории: выходные, бэктесты, разборы. Там ваше аналитическое преимущество накапливается.</p>
      <p>В момент входа анализ &mdash; это просто нерешительность в белом халате.</p>
      <p>Разделите эти две вещи &mdash; и обе станут лучше: глубже исследования, быстрее исполнение.</p>
    `, firstName))
	},
	func(firstName string) (string, string) {
		return fmt.Sprintf("%s, до ясности одно решение", firstName), wrap(fmt.Sprintf(`
      <p>Привет, %s!</p>
      <p>Две недели писем, одна мысль: проблема не в ваших знаниях, а в отсутствии вердикта.</p>
      <p>Один раз сведите то, что знаете, в правила. Дальше вердикты выносит система.</p>
      %s
      <p>Графики станут пустее. Счет &mdash; нет.</p>
    `, firstName, ctaButton(links.BaseURL, "Превратить анализ в действие")))
	},
}
