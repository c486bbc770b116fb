package compass

import "crypto_compass_backend/internal/model"

// archetypes is keyed by the slug pair of both axis levels.
var archetypes = map[string]model.Archetype{
	"puternic-centralizat-puternic-privat": {
		ID:               "puternic-centralizat-puternic-privat",
		Name:             "Capitalistul Reglementat",
		Color:            "from-red-600 to-orange-500",
		Tagline:          "Profitul prin control instituțional",
		Philosophy:       "Crypto-ul trebuie reglementat pentru a proteja investitorii și a asigura stabilitatea financiară.",
		NFTQuote:         "Profit prin ordine. Inovație prin reglementare. Succes prin conformitate.",
		ShortDescription: "Sunt un pragmatic care înțelege că puterea financiară vine din colaborarea cu sistemul. Văd reglementările ca garduri pe autostradă - mă limitează, dar îmi permit să merg rapid și sigur. Pentru mine, crypto legitimat înseamnă crypto profitabil.",
		Vision:           "Cred că crypto reprezintă evoluția naturală a capitalismului, dar nu poate prospera într-un vid legal. Văd reglementarea nu ca barieră, ci ca fundație necesară pentru creștere sustenabilă. Când guvernele stabilesc reguli clare, investitorii instituționali intră cu încredere, aducând lichiditatea și stabilitatea de care avem nevoie pentru maturizare.",
		Mission:          "Profit din volatilitate controlată, nu din haos. Susțin activ KYC/AML pentru că știu că banii murdari distrug reputația întregii industrii. Prefer exchange-urile centralizate pentru protecția legală pe care o oferă. Colaborez cu SEC și alte autorități ca parteneri, nu adversari. Construiesc pentru un ecosistem crypto matur unde profitul substanțial vine din conformitate, nu din evaziune.",
	},
	"puternic-centralizat-moderat-privat": {
		ID:               "puternic-centralizat-moderat-privat",
		Name:             "Pragmaticul Instituțional",
		Color:            "from-red-500 to-yellow-500",
		Tagline:          "Echilibru între profit și responsabilitate",
		Philosophy:       "Avem nevoie de reglementare inteligentă care să permită inovația dar să prevină abuzurile.",
		NFTQuote:         "Echilibru între inovație și responsabilitate. Profit cu purpose.",
		ShortDescription: "Sunt puntea dintre Wall Street și Silicon Valley. Nu răstorn sistemul, îl evoluez. Știu că banii mari vin din a face tehnologia disruptivă acceptabilă pentru masele conservatoare.",
		Vision:           "Navighez între două lumi - văd potențialul transformator al crypto dar înțeleg necesitatea structurilor tradiționale pentru stabilitate. Nu sunt aici pentru profit rapid; construiesc poduri durabile între sistemele financiare. Accept reglementarea ca pe un cadru necesar care, implementat inteligent, permite inovația să înflorească responsabil.",
		Mission:          "Susțin activ sandbox-uri de reglementare și proiecte care colaborează transparent cu autoritățile. Profitul meu vine din identificarea oportunităților la intersecția sistemelor vechi și noi. Folosesc strategic atât CEX-uri pentru lichiditate cât și DeFi pentru yield, mereu cu un ochi pe conformitate. Construiesc pentru un viitor unde crypto și finanțele tradiționale coexistă armonios.",
	},
	"puternic-centralizat-moderat-public": {
		ID:               "puternic-centralizat-moderat-public",
		Name:             "Reformatorul Progresist",
		Color:            "from-blue-600 to-purple-500",
		Tagline:          "Tehnologia pentru binele comun",
		Philosophy:       "Guvernele trebuie să folosească crypto pentru a crea servicii publice mai eficiente.",
		NFTQuote:         "Tehnologie pentru progres social. Guvernare digitală pentru toți.",
		ShortDescription: "Văd crypto ca instrument guvernamental pentru servirea cetățenilor. Blockchain public elimină corupția și face serviciile instant. Sunt optimist tehnologic - statul poate fi debuguit.",
		Vision:           "Văd crypto nu ca armă împotriva guvernelor, ci ca instrument revoluționar pentru modernizarea lor. CBDC-urile pot elimina corupția sistemică și democratiza accesul la servicii financiare. Blockchain-ul public guvernamental poate transforma fundamental votul, identitatea digitală și distribuția beneficiilor sociale.",
		Mission:          "Lucrez pentru implementarea tehnologiei blockchain în serviciile publice. Transparența forțată tehnologic face guvernarea inevitabil responsabilă. Da, sacrificăm privacy individual, dar câștigăm o societate mai dreaptă și eficientă. Susțin sisteme cu checks and balances algoritmice care limitează abuzul de putere prin design.",
	},
	"puternic-centralizat-puternic-public": {
		ID:               "puternic-centralizat-puternic-public",
		Name:             "Socialistul Digital",
		Color:            "from-blue-700 to-green-600",
		Tagline:          "Redistribuire prin tehnologie",
		Philosophy:       "Crypto-ul poate fi instrumentul pentru o societate mai echitabilă, dar numai prin control public.",
		NFTQuote:         "Redistribuire algoritmică. Echitate prin cod.",
		ShortDescription: "Pentru mine, crypto e justiție socială automatizată. Visez smart contracts care taxează bogații automat și distribuie săracilor instant. Tehnologia poate realiza utopia socialistă.",
		Vision:           "Crypto este instrumentul perfect pentru realizarea socialismului digital adevărat. Imaginez smart contracts care redistribuie automat bogăția, limite algoritmice pentru acumulare de capital, venit universal de bază distribuit transparent pe blockchain. Tehnologia face posibil ce socialismul tradițional doar visa - echitate perfectă prin cod.",
		Mission:          "Militez pentru control guvernamental puternic asupra infrastructurii crypto - piața liberă a demonstrat că generează doar inegalitate extremă. Implementez sisteme de taxare automată pe blockchain, transparență totală a tranzacțiilor pentru prevenirea evaziunii. Privacy-ul individual este sacrificiu necesar pentru echitatea socială absolută.",
	},
	"moderat-centralizat-puternic-privat": {
		ID:               "moderat-centralizat-puternic-privat",
		Name:             "Antreprenorul Adaptat",
		Color:            "from-orange-500 to-red-400",
		Tagline:          "Inovație cu cadru legal",
		Philosophy:       "Piața liberă cu reguli clare - asta e calea către prosperitate în crypto.",
		NFTQuote:         "Disrupt în limitele legii. Inovez unde alții ezită.",
		ShortDescription: "Sunt oportunist pozitiv - văd spațiile gri regulatory ca terenuri fertile. Nu mă plâng de reguli; le studiez pentru avantaje competitive. Conformitatea parțială e strategie, nu compromis.",
		Vision:           "Sunt antreprenor crypto pentru că văd ineficiențele sistemului actual ca oportunități de aur. Nu mă revolt împotriva regulilor - le hackuiesc din interior. Înțeleg că un grad de centralizare oferă eficiența și scalabilitatea pe care descentralizarea pură nu le poate atinge încă, și asta creează nișe profitabile.",
		Mission:          "Construiesc business-uri punte între crypto și lumea tradițională - payment processors crypto-compliant, fonduri de investiții blockchain înregistrate legal. Profitul meu vine din arbitrajul între aceste lumi. Accept KYC flexibil după context, oferind opțiuni pentru fiecare tip de client. Mă adaptez rapid la schimbări regulatory fără să-mi pierd edge-ul competitiv inovator.",
	},
	"moderat-centralizat-moderat-privat": {
		ID:               "moderat-centralizat-moderat-privat",
		Name:             "Moderatul Pragmatic",
		Color:            "from-gray-500 to-blue-500",
		Tagline:          "Echilibru în toate aspectele",
		Philosophy:       "Cea mai bună abordare e să combinăm libertatea cu responsabilitatea.",
		NFTQuote:         "Înțelepciune prin echilibru. Succes prin adaptare.",
		ShortDescription: "Sunt vocea rațiunii într-o industrie de extreme. Când alții strigă \"HODL\" sau \"HFSP\", eu calculez risk-reward. Nu mă aliez - iau ce-i mai bun din fiecare tabără.",
		Vision:           "Refuz să aleg extreme într-o industrie polarizată. Văd valoare egală în eficiența sistemelor centralizate și în inovația protocoalelor descentralizate. Pentru mine, profitul și sustenabilitatea ecosistemului nu sunt mutual exclusive - sunt complementare. Înțelepciunea vine din adaptare, nu din dogmă.",
		Mission:          "Portfolio-ul meu reflectă această filozofie - Bitcoin pentru descentralizare, Ethereum pentru inovație, exchange tokens pentru expunere la infrastructură. Folosesc DeFi pentru yield farming dar păstrez fonduri în CEX-uri reglementate pentru siguranță. Nu demonizez guvernele dar nici nu le glorific. Navighez inteligent între forțe opuse, profitând din ambele lumi.",
	},
	"moderat-centralizat-moderat-public": {
		ID:               "moderat-centralizat-moderat-public",
		Name:             "Democratul Tehnologic",
		Color:            "from-blue-500 to-green-500",
		Tagline:          "Participare și transparență",
		Philosophy:       "Crypto trebuie să servească democrația și să facă guvernarea mai transparentă.",
		NFTQuote:         "Democrație augmentată. Participare prin tehnologie.",
		ShortDescription: "Cred că blockchain revitalizează democrația, nu o înlocuiește. Imaginez vot transparent, bugete publice deschise, propuneri comunitare. Instituțiile pot evolua, nu trebuie distruse.",
		Vision:           "Blockchain poate revitaliza democrația fără să o înlocuiască. Imaginez cetățeni votând transparent, bugete publice complet deschise, propuneri comunitare votate direct. Instituțiile tradiționale nu trebuie distruse - trebuie augmentate tehnologic. DAO-urile și guvernele pot coexista și învăța reciproc.",
		Mission:          "Implementez soluții blockchain în procesele democratice existente. Profitul personal nu e prioritate, dar recunosc necesitatea incentivelor economice pentru participare. Construiesc platforme unde societatea civilă poate propune și finanța proiecte publice. Succesul meu se măsoară în participare civică crescută și transparență guvernamentală.",
	},
	"moderat-centralizat-puternic-public": {
		ID:               "moderat-centralizat-puternic-public",
		Name:             "Activistul Instituțional",
		Color:            "from-green-600 to-blue-600",
		Tagline:          "Schimbare prin canale oficiale",
		Philosophy:       "Putem folosi instituțiile existente pentru a face crypto să servească societății.",
		NFTQuote:         "Schimbare din interior. Activism prin canale oficiale.",
		ShortDescription: "Transform sistemul din interior. Instituțiile pot fi salvate cu crypto. Fac lobby pentru reglementări pro-public. Impact social peste profit - asta e succesul meu.",
		Vision:           "Transform sistemul din interior pentru că revoluțiile violente rareori duc la progres durabil. Instituțiile existente au defecte majore dar și resurse și legitimitate pe care le putem redirecționa. Crypto nu trebuie să le distrugă - trebuie să le facă să servească cu adevărat publicul.",
		Mission:          "Fac lobby persistent pentru reglementări care prioritizează binele public peste profitul privat. Susțin doar proiecte crypto cu impact social măsurabil - incluziune financiară, transparență guvernamentală, distribuție echitabilă. Colaborez strategic cu ONG-uri, guverne și organizații internaționale. Accept că schimbarea vine lent, dar vine sigur.",
	},
	"moderat-descentralizat-puternic-privat": {
		ID:               "moderat-descentralizat-puternic-privat",
		Name:             "Libertarianul Moderat",
		Color:            "from-purple-500 to-orange-500",
		Tagline:          "Libertate cu limite",
		Philosophy:       "Vrem libertate maximă, dar înțelegem că anumite reguli sunt necesare.",
		NFTQuote:         "Libertate responsabilă. Capitalism fără coerciție.",
		ShortDescription: "Cred în piața liberă dar recunosc că anarhia totală nu merge. Vreau descentralizare anti-tiranie dar accept reguli anti-haos. Profitul meu e cinstit, prin voluntarism pur.",
		Vision:           "Cred profund în piața liberă dar recunosc pragmatic că anarhia totală generează haos contraproductiv. Vreau suficientă descentralizare pentru a preveni tirania guvernamentală, dar accept că unele reguli minime sunt necesare pentru funcționarea societății. Libertatea mea se bazează pe responsabilitate personală.",
		Mission:          "Folosesc predominant DeFi și DEX-uri pentru a-mi păstra suveranitatea, dar înțeleg de ce alții preferă CEX-uri - nu îi judec. Privacy-ul meu e important dar nu absolut. Susțin proiecte care maximizează libertatea individuală fără a prejudicia pe alții. Construiesc alternative superioare sistemului actual, nu îl distrug.",
	},
	"moderat-descentralizat-moderat-privat": {
		ID:               "moderat-descentralizat-moderat-privat",
		Name:             "Individualistul Echilibrat",
		Color:            "from-purple-400 to-blue-400",
		Tagline:          "Autonomie personală responsabilă",
		Philosophy:       "Fiecare să-și aleagă drumul, dar să respecte și drepturile altora.",
		NFTQuote:         "Autonomie cu empatie. Independență fără izolare.",
		ShortDescription: "Valorizez independența dar înțeleg viața în societate. Crypto îmi dă auto-suveranitate pe care o folosesc responsabil. Nu-s obsedat de profit dar nici nu-l resping.",
		Vision:           "Valorizez profund independența personală dar înțeleg că exist într-o țesătură socială complexă. Crypto îmi oferă instrumentele pentru auto-suveranitate financiară pe care le folosesc cu înțelepciune și moderație. Nu sunt obsedat de maximizarea profitului - caut echilibru între autonomie și conexiune umană.",
		Mission:          "Diversific strategic între soluții centralizate și descentralizate, alegând instrumentul potrivit pentru fiecare context. Privacy-ul meu e important dar nu cu prețul izolării sociale complete. Particip în comunități crypto care respectă individualitatea dar încurajează colaborarea organică. Succesul înseamnă independență etică cu capacitatea și voința de a ajuta când aleg.",
	},
	"moderat-descentralizat-moderat-public": {
		ID:               "moderat-descentralizat-moderat-public",
		Name:             "Cooperativistul Digital",
		Color:            "from-green-500 to-purple-500",
		Tagline:          "Colaborare voluntară",
		Philosophy:       "Comunitățile pot să se auto-organizeze pentru binele comun fără forță.",
		NFTQuote:         "Împreună suntem mai puternici. Cooperare fără coerciție.",
		ShortDescription: "Cred în auto-organizare comunitară pentru bine comun. Crypto oferă cooperare voluntară scalabilă. Particip în DAO-uri pentru bunuri publice cu distribuție echitabilă.",
		Vision:           "Cred profund în puterea comunităților de a se auto-organiza organic pentru binele comun. Crypto oferă pentru prima dată în istorie instrumentele pentru cooperare voluntară la scară globală. Particip activ în DAO-uri care construiesc infrastructură publică și distribuie valoarea echitabil între contribuitori.",
		Mission:          "Nu resping profitul dar îl văd ca mijloc pentru impact, nu scop în sine. Reinvestesc consistent câștigurile în proiecte comunitare și bunuri publice. Folosesc DeFi pentru a oferi servicii financiare accesibile, nu pentru extracție maximă de valoare. Construim sisteme care aliniază elegant incentivele individuale cu prosperitatea colectivă.",
	},
	"moderat-descentralizat-puternic-public": {
		ID:               "moderat-descentralizat-puternic-public",
		Name:             "Anarhist-Socialistul",
		Color:            "from-green-600 to-purple-600",
		Tagline:          "Solidaritate fără stat",
		Philosophy:       "Putem crea o societate echitabilă prin cooperare voluntară, nu prin forță.",
		NFTQuote:         "Solidaritate fără stat. Abundență prin cooperare liberă.",
		ShortDescription: "Visez lume fără state și corporații dar plină de solidaritate. Crypto realizează organizare la scară fără ierarhie. Resping acumularea - bogăția statică e furt comunitar.",
		Vision:           "Visez o lume post-statală plină de comunități solidare auto-organizate. Crypto realizează în sfârșit visul anarhist clasic - organizare la scară fără coerciție sau ierarhie impusă. Resping fundamental acumularea de capital privat - bogăția stagnantă e furt sistemic de la comunitate.",
		Mission:          "Fiecare protocol la care contribui prioritizează radical comunitatea peste profit individual. Particip exclusiv în experimente economice alternative - monede locale, credite mutuale, economii circulare. DeFi adevărat înseamnă dizolvarea inegalităților, nu recrearea lor. Construim pentru abundență comunitară care face bogăția individuală irelevantă.",
	},
	"puternic-descentralizat-puternic-privat": {
		ID:               "puternic-descentralizat-puternic-privat",
		Name:             "Crypto-Anarhist",
		Color:            "from-yellow-500 to-red-500",
		Tagline:          "Libertate absolută",
		Philosophy:       "Codul este lege. Guvernele sunt obsolete. Fiecare pentru sine.",
		NFTQuote:         "Codul este lege. Criptografia este armura. Libertatea este non-negociabilă.",
		ShortDescription: "Sistemul e corupt iremediabil. Crypto distruge monopolul statal asupra banilor. Fiecare satoshi e rebeliune. Guvernele sunt paraziți - crypto îi face obsolete.",
		Vision:           "Sistemul actual e corupt dincolo de orice posibilitate de reformă și trebuie abandonat complet. Crypto nu e despre \"number go up\" - e despre distrugerea monopolului violent al statului asupra banilor și puterii. Fiecare satoshi deținut anonim e un act de rebeliune împotriva tiraniei.",
		Mission:          "Folosesc exclusiv infrastructură descentralizată - privacy coins, atomic swaps, no-KYC DEX-uri. Rulez full node, folosesc Tor, mixez obsesiv fiecare tranzacție. Nu voi ceda niciodată cheile private sau identitatea. Profit din speculație pură pe care o consider perfect morală - într-o piață cu adevărat liberă, doar competența contează.",
	},
	"puternic-descentralizat-moderat-privat": {
		ID:               "puternic-descentralizat-moderat-privat",
		Name:             "Pionierul Pragmatic",
		Color:            "from-yellow-400 to-purple-500",
		Tagline:          "Inovație fără limite",
		Philosophy:       "Să construim viitorul fără să întrebăm permisiunea, dar să fim și responsabili.",
		NFTQuote:         "Construiesc viitorul. Permission not required.",
		ShortDescription: "Construiesc tehnologii care fac centralizarea obsoletă. Nu pierd timp cu regulatori - codez. Profit din munca mea și reinvestesc în ecosistem. Descentralizarea e eficiență, nu ideologie.",
		Vision:           "Sunt aici pentru a construi tehnologii care fac centralizarea tehnologic obsoletă, nu pentru a pierde timp cu dezbateri ideologice. Timpul petrecut luptând cu regulatorii e timp furat de la inovație. Construiesc protocoale atât de superioare încât adoptarea devine inevitabilă, indiferent de rezistența sistemului.",
		Mission:          "Da, profit substanțial din munca mea - este recompensa justă pentru risc și inovație. Reinvestesc agresiv în ecosistem, finanțez dezvoltatori talentați, susțin infrastructură open-source. Pentru mine, descentralizarea nu e religie ci eficiență superioară dovedibilă. Măsor succesul în protocoale autonome și comunități auto-sustenabile.",
	},
	"puternic-descentralizat-moderat-public": {
		ID:               "puternic-descentralizat-moderat-public",
		Name:             "Vizionarul Comunitar",
		Color:            "from-purple-500 to-green-500",
		Tagline:          "Tehnologie pentru toți",
		Philosophy:       "Descentralizarea poate crea abundență pentru toată lumea, nu doar pentru elită.",
		NFTQuote:         "Tehnologie pentru toți. Descentralizare pentru prosperitate universală.",
		ShortDescription: "Descentralizarea radicală e mijloc spre lume mai bună. Construiesc protocoale imune la capturare privată. Codul meu servește umanitatea, nu doar early adopters.",
		Vision:           "Descentralizarea radicală nu e scopul final - e instrumentul necesar pentru crearea unei lumi cu adevărat mai bune pentru absolut toți. Construiesc protocoale imposibil de capturat de interese private, unde valoarea creată curge inevitabil către comunitatea largă. Tehnologia trebuie să servească umanitatea întreagă.",
		Mission:          "Accept diferențe în recompense dacă toată lumea beneficiază proporțional. Implementez mecanisme anti-concentrare, airdrops generoase, distribuții algoritmice echitabile. Tehnologia pe care o construim trebuie să fie la fel de accesibilă și utilă global. Măsor succesul în vieți transformate și oportunități create, nu în metrici financiare.",
	},
	"puternic-descentralizat-puternic-public": {
		ID:               "puternic-descentralizat-puternic-public",
		Name:             "Utopistul Crypto",
		Color:            "from-green-500 to-blue-500",
		Tagline:          "Revoluție pentru umanitate",
		Philosophy:       "Crypto va libera omenirea de toate formele de opresiune și va crea o lume perfectă.",
		NFTQuote:         "Paradis pe blockchain. Revoluție pentru sufletul umanității.",
		ShortDescription: "Crypto transcende banii spre post-scarcitate. Blockchain coordonează abundență universală. Toți liberi să-și urmeze pasiunea. DAOs înlocuiesc toate ierarhiile.",
		Vision:           "Crypto transcende complet conceptul de bani către o realitate post-scarcitate perfectă. Imaginez blockchain-uri care coordonează automat resurse infinite pentru fiecare ființă umană. Proprietatea privată asupra protocoalelor e blasfemie - tot codul trebuie eternamente deschis, toate resursele partajate frățește, toate deciziile luate prin consens universal absolut.",
		Mission:          "Lucrez obsesiv pentru ziua când conceptul de \"economie\" devine arhaic. Contribuția mea nu vine din dorință de profit - profitul însuși va fi amintire istorică amuzantă. Construiesc pentru momentul când crypto se dizolvă invizibil în realitate, permițând umanității să transcendă complet constrângerile materiale către împlinire spirituală colectivă.",
	},
}
