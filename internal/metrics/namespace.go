package metrics

const Namespace = "vitrine"
