package task

// AllID is the menu number meaning "install everything".
const AllID = 20

// All returns every registered task in canonical order. This order is
// both the menu order and the "install everything" order.
func All() []Task {
	return []Task{
		Nmap(),
		Masscan(),
		Gobuster(),
		Ffuf(),
		Nikto(),
		Hydra(),
		John(),
		Hashcat(),
		Sqlmap(),
		Impacket(),
		Responder(),
		ExploitDB(),
		Wordlists(),
		Metasploit(),
		Docker(),
		Golang(),
		Nuclei(),
		Ngrok(),
		VSCode(),
	}
}

// ByID looks a task up by its menu number.
func ByID(id int) (Task, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
