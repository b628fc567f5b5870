package catalog

var messages = []string{
	"A tua palavra é lâmpada que ilumina os meus passos e luz que clareia o meu caminho.",
	"Tudo posso naquele que me fortalece.",
	"O Senhor é o meu pastor; de nada terei falta.",
	"Deem graças ao Senhor, porque ele é bom; o seu amor dura para sempre.",
	"Não fui eu que ordenei a você? Seja forte e corajoso!",
	"Busquem, pois, em primeiro lugar o Reino de Deus e a sua justiça.",
	"O coração alegre aformoseia o rosto.",
	"O amor é paciente, o amor é bondoso.",
	"Confie no Senhor de todo o seu coração.",
	"Mil cairão ao teu lado, e dez mil, à tua direita, mas tu não serás atingido.",
	"Elevo os meus olhos para os montes; de onde me vem o socorro?",
	"O Senhor te guardará de todo o mal; ele guardará a tua alma.",
	"Alegrem-se na esperança, sejam pacientes na tribulação, perseverem na oração.",
	"Se Deus é por nós, quem será contra nós?",
	"O que vem a mim de maneira nenhuma o lançarei fora.",
	"O SENHOR é a minha luz e a minha salvação; a quem temerei?",
	"Ensina-nos a contar os nossos dias, para que alcancemos coração sábio.",
	"Deus é o nosso refúgio e fortaleza, socorro bem presente na angústia.",
	"As misericórdias do Senhor são a causa de não sermos consumidos.",
	"Peçam, e lhes será dado; busquem, e encontrarão; batam, e a porta será aberta.",
}

// MessageFor picks the daily motivational message. Same day, same message.
func MessageFor(dayOfYear int) string {
	i := dayOfYear % len(messages)
	if i < 0 {
		i += len(messages)
	}
	return messages[i]
}
